// Package mode owns the current input mode and every transition between
// modes.
//
// There are two modes, NORMAL and INSERT. Each has its own binding table.
// Only the table of the current mode is installed in the host at any time:
// Change uninstalls the outgoing table and installs the incoming one before
// anything else happens, so the host never dispatches a stale binding.
//
// # Mode Lifecycle
//
//	┌────────┐   Change(Insert)   ┌────────┐
//	│ NORMAL │ ─────────────────▶ │ INSERT │
//	└────────┘                    └────────┘
//	     ▲                             │
//	     │      Change(Normal)         │
//	     └─────────────────────────────┘
//
// When switching modes:
//  1. The outgoing table is uninstalled, the incoming one installed
//  2. The visual flag is cleared
//  3. The insert exit hook runs when leaving INSERT
//  4. The current mode is updated
//  5. The insert entry hook runs when entering INSERT
//  6. xul-mode and xul-mode-attrs are published
//  7. Change callbacks are notified
//
// # Insert Sessions
//
// Entering INSERT snapshots the buffer's undo record count; leaving it
// merges every record created since down to one, so a whole insert session
// undoes as a unit.
package mode

package mode

import (
	"github.com/dshills/xul/internal/host"
)

// insertSession is the state kept across one INSERT session.
type insertSession struct {
	undoBefore        int
	restoreCursorLine bool
}

// enterInsert starts an insert session.
func (c *Controller) enterInsert() {
	if c.rec != nil {
		c.rec.BeginInsert()
	}

	c.insert.undoBefore = 0
	if f := c.host.ActiveFrame(); f != nil {
		if b := f.Buffer(); b != nil {
			c.insert.undoBefore = b.UndoRecords()
		}
	}

	if host.VarTruthy(c.host, VarInsertNoCursorLine) && host.VarTruthy(c.host, VarCursorLine) {
		c.insert.restoreCursorLine = true
		c.host.SetVar(VarCursorLine, "no")
	}
}

// exitInsert ends an insert session. Undo records created during the
// session are merged into one.
func (c *Controller) exitInsert() {
	if f := c.host.ActiveFrame(); f != nil {
		if b := f.Buffer(); b != nil {
			merged := 0
			for n := b.UndoRecords(); n > c.insert.undoBefore+1; n = b.UndoRecords() {
				b.MergeUndoRecords()
				if b.UndoRecords() >= n {
					c.logger.Warn("undo records did not merge (%d left)", n)
					break
				}
				merged++
			}
			if merged > 0 {
				c.logger.Debug("merged %d undo records", merged)
			}
		}
	}

	if c.insert.restoreCursorLine && host.VarTruthy(c.host, VarInsertNoCursorLine) {
		c.host.SetVar(VarCursorLine, "yes")
	}
	c.insert.restoreCursorLine = false

	c.host.Exec("select-lines")
}

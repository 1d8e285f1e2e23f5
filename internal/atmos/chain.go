package atmos

// chain tracks an in-progress maximal non-wall run along one axis while
// sweeping a line of tile indices in order.
type chain struct {
	axis       int
	step       int
	started    bool
	startIndex int
	tuning     *Tuning
}

// progress folds one more tile index into the chain, invoking
// ProcessChain on prev/next whenever a run completes.
func (c *chain) progress(prev, next *ZLevel, index int) {
	complete := false
	restart := false

	nextTile := next.GetTile(index)
	switch {
	case !c.started && !nextTile.Wall[c.axis]:
		c.started = true
		c.startIndex = index
		return
	case c.started && nextTile.Wall[c.axis]:
		complete = true
	case c.started && nextTile.Mode.Kind == ModeSpace:
		// A space tile between two otherwise-chained runs ends the
		// prior chain here and immediately starts a new one using this
		// same tile as its left endpoint.
		complete = true
		restart = true
	default:
		return
	}

	if !complete {
		return
	}

	ProcessChain(prev, next, c.startIndex, index, c.axis, c.step, c.tuning)
	if restart {
		c.startIndex = index
	} else {
		c.started = false
	}
}

// PressureFlow runs the chain solver twice: once column-wise (Y-axis,
// increasing index), once row-wise (X-axis, row-major over (y,x)).
func PressureFlow(prev, next *ZLevel, tuning *Tuning) {
	mapSize := next.MapSize

	yChain := chain{axis: AxisY, step: 1, tuning: tuning}
	for index := 0; index < mapSize*mapSize; index++ {
		yChain.progress(prev, next, index)
	}

	xChain := chain{axis: AxisX, step: mapSize, tuning: tuning}
	for invIndex := 0; invIndex < mapSize*mapSize; invIndex++ {
		y := int32(invIndex / mapSize)
		x := int32(invIndex % mapSize)
		index := int(x)*mapSize + int(y)
		xChain.progress(prev, next, index)
	}
}

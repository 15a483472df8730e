package parser

// applyPreferFuture nudges under-specified expressions that read as past
// into the next future occurrence: "7月15號" said in August resolves to
// next July. It never touches spans with an explicit coarser anchor
// (a stated year blocks the month check), nor durations.
func (r *spanResolver) applyPreferFuture() error {
	if !r.settings.PreferFuture || r.isDelta {
		return nil
	}

	for _, unit := range []int{unitMonth, unitDay, unitHour} {
		r.preferFutureAt(unit)
	}
	return nil
}

// preferFutureAt applies the heuristic at one unit. The unit's value must
// have been resolved, every coarser field must still be open, and the
// value must lie strictly in the basetime's past at that unit. A tie
// ("今天七月十五" said on July 15) stays on the basetime.
func (r *spanResolver) preferFutureAt(unit int) {
	if !r.tp.field(unit).IsSet() {
		return
	}
	for coarser := unitYear; coarser < unit; coarser++ {
		if r.tp.field(coarser).IsSet() {
			return
		}
	}

	if r.tp.field(unit).Value() >= fieldValueOf(r.basetime, unit) {
		return
	}

	// One step at the next coarser unit moves the value into the future;
	// the coarser fields then come from the shifted instant.
	shifted := shiftByUnit(r.basetime, unit-1, 1)
	for coarser := unitYear; coarser < unit; coarser++ {
		r.tp.setField(coarser, fieldValueOf(shifted, coarser))
	}
	r.logger.Debug("preferred future occurrence", "unit", unitNames[unit])
}

package workload

// Validate checks the Problem for structural defects before any model is
// built. It returns a ValidationError-coded error naming the offending
// field, or nil when the Problem is well formed.
//
// Checked conditions:
//   - the goal sequence is non-empty and all tolerances are >= 0
//   - scan and index identifiers are unique
//   - every coverage entry refers to a known index
//   - costs, overheads and rule values are >= 0
func (p *Problem) Validate() error {
	if len(p.Goals) == 0 {
		return EmptyGoalsError()
	}
	for _, g := range p.Goals {
		if g.Tolerance < 0 {
			return NegativeValueError(
				"Tolerance of goal '"+g.Name.String()+"'", g.Tolerance)
		}
	}

	indexIDs := make(map[string]struct{}, len(p.Indexes))
	for _, idx := range p.Indexes {
		if _, ok := indexIDs[idx.ID]; ok {
			return DuplicateIDError("index", idx.ID)
		}
		indexIDs[idx.ID] = struct{}{}
		if idx.WriteOverhead < 0 {
			return NegativeValueError(
				"Write overhead of index '"+idx.ID+"'", idx.WriteOverhead)
		}
	}

	scanIDs := make(map[string]struct{}, len(p.Scans))
	for _, s := range p.Scans {
		if _, ok := scanIDs[s.ID]; ok {
			return DuplicateIDError("scan", s.ID)
		}
		scanIDs[s.ID] = struct{}{}
		if s.DefaultCost < 0 {
			return NegativeValueError(
				"Default cost of scan '"+s.ID+"'", s.DefaultCost)
		}
		for indexID, cost := range s.Coverage {
			if _, ok := indexIDs[indexID]; !ok {
				return UnknownIndexError(s.ID, indexID)
			}
			if cost < 0 {
				return NegativeValueError(
					"Coverage cost of scan '"+s.ID+"' by index '"+indexID+"'",
					cost)
			}
		}
	}

	if v := p.Rules.MaxPossibleIndexes; v != nil && *v < 0 {
		return NegativeValueError(
			"Rule 'Maximum Number of Possible Indexes'", float64(*v))
	}
	if v := p.Rules.MaxIWO; v != nil && *v < 0 {
		return NegativeValueError(
			"Rule 'Maximum Index Write Overhead'", *v)
	}

	return nil
}

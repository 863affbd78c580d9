package datatype

// Plan returns the sequence of Primitives that converts n samples of tag
// from to tag to, pivoting through S4 or T8 as convfunc() does in
// convdata.c. Plan is the function to use when the same conversion will be
// applied to many buffers: build it once, then call Apply repeatedly.
//
// Plan's direct F4<->T4 special case uses the fast ("sloppy") variant, the
// same choice convfunc() makes, since a cached plan is expected to run over
// bulk data where convfunc's speed/accuracy tradeoff applies.
func Plan(from, to Tag) ([]Primitive, error) {
	return plan(from, to, fastF4ToT4, fastT4ToF4)
}

// Convert converts n samples of tag from to tag to in place, in a single
// call, mirroring convdata.c's convdata(). Unlike Plan, Convert's direct
// F4<->T4 special case uses the exact ("correct") variant, matching
// convdata's choice for interactive, one-shot conversions.
//
// buf must be large enough to hold n samples at the widest byte width the
// conversion passes through: from's, to's, and that of any S4 or T8 pivot
// in the chain (a T4 -> A2 conversion, for example, goes through T8 and
// needs 8 bytes per sample).
func Convert(buf []byte, n int, from, to Tag) error {
	steps, err := plan(from, to, exactF4ToT4, exactT4ToF4)
	if err != nil {
		return err
	}
	Apply(steps, buf, n)
	return nil
}

// Apply runs a plan built by Plan or Convert's internals over buf.
func Apply(steps []Primitive, buf []byte, n int) {
	for _, step := range steps {
		step(buf, n)
	}
}

func plan(from, to Tag, f4ToT4, t4ToF4 Primitive) ([]Primitive, error) {
	if from == to {
		return nil, nil
	}

	fromRow, ok := catalogue[from]
	if !ok {
		return nil, ErrUnknownTag
	}
	toRow, ok := catalogue[to]
	if !ok {
		return nil, ErrUnknownTag
	}

	switch {
	case from == I2 && to == S2:
		return []Primitive{i2ToS2}, nil
	case from == S2 && to == I2:
		return []Primitive{s2ToI2}, nil
	case from == F4 && to == T4:
		return []Primitive{f4ToT4}, nil
	case from == T4 && to == F4:
		return []Primitive{t4ToF4}, nil
	}

	switch {
	case from == S4 && toRow.haveS4:
		return []Primitive{toRow.fromS4}, nil
	case to == S4 && fromRow.haveS4:
		return []Primitive{fromRow.toS4}, nil
	case fromRow.haveS4 && toRow.haveS4:
		return []Primitive{fromRow.toS4, toRow.fromS4}, nil
	}

	switch {
	case from == T8:
		return []Primitive{toRow.fromT8}, nil
	case to == T8:
		return []Primitive{fromRow.toT8}, nil
	}

	var toPivot []Primitive
	if fromRow.haveT8 {
		toPivot = []Primitive{fromRow.toT8}
	} else {
		toPivot = []Primitive{fromRow.toS4, s4ToT8}
	}

	var fromPivot []Primitive
	if toRow.haveT8 {
		fromPivot = []Primitive{toRow.fromT8}
	} else {
		fromPivot = []Primitive{t8ToS4, toRow.fromS4}
	}

	return append(toPivot, fromPivot...), nil
}

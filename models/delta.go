package models

import "encoding/json"

// FieldDelta maps a leaf field name to its new FieldValue
type FieldDelta map[string]FieldValue

// Delta is the set of form fields whose value changed on one turn. It is the
// only change signal surfaced to callers; state must not be inferred from the
// full record.
type Delta struct {
	Fields  FieldDelta
	Address FieldDelta
}

// IsEmpty reports whether no field changed
func (d Delta) IsEmpty() bool {
	return len(d.Fields) == 0 && len(d.Address) == 0
}

// MarshalJSON renders the delta as a flat object with changed top-level
// fields, plus a nested "address" object only when an address sub-field
// changed.
func (d Delta) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Fields)+1)
	for name, fv := range d.Fields {
		out[name] = fv
	}
	if len(d.Address) > 0 {
		out["address"] = d.Address
	}
	return json.Marshal(out)
}

package models

// Confidence grades how certain the extraction was about a field value
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// FieldValue is a single extracted datum with its provenance. Confidence and
// Turn are nil exactly when Value is nil. A FieldValue is never mutated in
// place; merges replace it wholesale so value, confidence and turn always
// come from the same extraction.
type FieldValue struct {
	Value      *string     `json:"value"`
	Confidence *Confidence `json:"confidence"`
	Turn       *int        `json:"turn"`
}

// Address groups the four address sub-fields of the intake form
type Address struct {
	Street FieldValue `json:"street"`
	City   FieldValue `json:"city"`
	State  FieldValue `json:"state"`
	Zip    FieldValue `json:"zip"`
}

// IntakeForm is the structured demographic record built up over the
// conversation. Each merge produces a full new snapshot; the stored form is
// never partially mutated.
type IntakeForm struct {
	FirstName   FieldValue `json:"first_name"`
	LastName    FieldValue `json:"last_name"`
	DateOfBirth FieldValue `json:"date_of_birth"`
	Phone       FieldValue `json:"phone"`
	Email       FieldValue `json:"email"`
	Address     Address    `json:"address"`
}

// ExtractedAddress is the address portion of one extraction pass
type ExtractedAddress struct {
	Street *FieldValue `json:"street"`
	City   *FieldValue `json:"city"`
	State  *FieldValue `json:"state"`
	Zip    *FieldValue `json:"zip"`
}

// ExtractedForm is the partial record parsed out of a single extraction
// response. Absent fields decode to nil and leave the stored form untouched.
type ExtractedForm struct {
	FirstName   *FieldValue       `json:"first_name"`
	LastName    *FieldValue       `json:"last_name"`
	DateOfBirth *FieldValue       `json:"date_of_birth"`
	Phone       *FieldValue       `json:"phone"`
	Email       *FieldValue       `json:"email"`
	Address     *ExtractedAddress `json:"address"`
}

// IsComplete reports whether all nine leaf fields carry a value. Values are
// not validated beyond presence.
func (f IntakeForm) IsComplete() bool {
	leaves := []FieldValue{
		f.FirstName, f.LastName, f.DateOfBirth, f.Phone, f.Email,
		f.Address.Street, f.Address.City, f.Address.State, f.Address.Zip,
	}
	for _, leaf := range leaves {
		if leaf.Value == nil {
			return false
		}
	}
	return true
}

// Merge folds one extraction into the form and returns the new snapshot.
// A field is replaced wholesale only when the extraction supplies a non-null
// value for it; omitted or null fields keep their previous state, so a known
// field never regresses to unknown.
func (f IntakeForm) Merge(ex ExtractedForm) IntakeForm {
	out := f
	applyField(&out.FirstName, ex.FirstName)
	applyField(&out.LastName, ex.LastName)
	applyField(&out.DateOfBirth, ex.DateOfBirth)
	applyField(&out.Phone, ex.Phone)
	applyField(&out.Email, ex.Email)
	if ex.Address != nil {
		applyField(&out.Address.Street, ex.Address.Street)
		applyField(&out.Address.City, ex.Address.City)
		applyField(&out.Address.State, ex.Address.State)
		applyField(&out.Address.Zip, ex.Address.Zip)
	}
	return out
}

func applyField(dst *FieldValue, src *FieldValue) {
	if src != nil && src.Value != nil {
		*dst = *src
	}
}

// Diff compares the form against a previous snapshot and returns the leaf
// fields whose value changed. Confidence or turn changes without a value
// change do not count as an update.
func (f IntakeForm) Diff(prev IntakeForm) Delta {
	var d Delta
	diffField(&d.Fields, "first_name", f.FirstName, prev.FirstName)
	diffField(&d.Fields, "last_name", f.LastName, prev.LastName)
	diffField(&d.Fields, "date_of_birth", f.DateOfBirth, prev.DateOfBirth)
	diffField(&d.Fields, "phone", f.Phone, prev.Phone)
	diffField(&d.Fields, "email", f.Email, prev.Email)
	diffField(&d.Address, "street", f.Address.Street, prev.Address.Street)
	diffField(&d.Address, "city", f.Address.City, prev.Address.City)
	diffField(&d.Address, "state", f.Address.State, prev.Address.State)
	diffField(&d.Address, "zip", f.Address.Zip, prev.Address.Zip)
	return d
}

func diffField(into *FieldDelta, name string, current, previous FieldValue) {
	if sameValue(current.Value, previous.Value) {
		return
	}
	if *into == nil {
		*into = FieldDelta{}
	}
	(*into)[name] = current
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

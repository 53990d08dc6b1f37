package errors

// MetaField is the meta key holding the dotted path of a record field
const MetaField = "field"

// Reason values stored under MetaReason
const (
	MetaReason    = "reason"
	ReasonMissing = "missing"
	ReasonType    = "wrong_type"
)

// MissingField reports a required key that is absent from a decoded payload.
func MissingField(path string) *Error {
	return Newf(CodeInvalidArgument, "missing field %q", path).
		WithMeta(MetaField, path).
		WithMeta(MetaReason, ReasonMissing)
}

// InvalidFieldf reports a key that is present but holds a value of the wrong shape.
func InvalidFieldf(path, format string, args ...interface{}) *Error {
	err := Newf(CodeInvalidArgument, format, args...)
	return err.WithMeta(MetaField, path).WithMeta(MetaReason, ReasonType)
}

// IsMissingField checks if an error reports an absent payload key
func IsMissingField(err error) bool {
	if !IsInvalidArgument(err) {
		return false
	}
	reason, _ := GetMeta(err)[MetaReason].(string)
	return reason == ReasonMissing
}

// FieldPath returns the field path attached to a missing or invalid field error
func FieldPath(err error) string {
	path, _ := GetMeta(err)[MetaField].(string)
	return path
}

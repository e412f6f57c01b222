package log

import "time"

// Field is a single structured key/value attached to an entry.
type Field struct {
	Key   string
	Value interface{}
}

// Str returns a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 returns an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Dur returns a duration field.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Any returns a field holding an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Err returns an "error" field. A nil error yields a nil value.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component returns the component field.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }

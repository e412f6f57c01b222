package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// TextFormatter renders entries as a single human-readable line:
//
//	2006-01-02T15:04:05.000Z INFO  message component=demo id=ID 1
//
// Fields are sorted by key.
type TextFormatter struct {
	// DisableTimestamp omits the leading timestamp; useful in tests.
	DisableTimestamp bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(timestampLayout))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s %s", entry.Level.String(), entry.Message)
	for _, k := range sortedKeys(entry.Fields) {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(textValue(entry.Fields[k]))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func textValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		if strings.ContainsAny(t, " \t\"=") {
			return fmt.Sprintf("%q", t)
		}
		return t
	case time.Duration:
		return t.String()
	case error:
		return fmt.Sprintf("%q", t.Error())
	default:
		return fmt.Sprint(t)
	}
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	m := make(map[string]interface{}, len(entry.Fields)+3)
	for k, v := range entry.Fields {
		switch t := v.(type) {
		case error:
			m[k] = t.Error()
		case time.Duration:
			m[k] = t.String()
		default:
			m[k] = v
		}
	}
	m["ts"] = entry.Timestamp.Format(timestampLayout)
	m["level"] = entry.Level.String()
	m["msg"] = entry.Message
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

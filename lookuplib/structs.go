package lookuplib

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ProviderLookupResult is geolocation data of IP address. All fields
// are optional: providers set nil if they know nothing.
type ProviderLookupResult struct {
	IP           *string `json:"IP"`
	City         *string `json:"City"`
	Region       *string `json:"Region"`
	Country      *string `json:"Country"`
	Location     *string `json:"Location"`
	Organization *string `json:"Organization"`
	Postal       *string `json:"Postal"`
}

// Record is an outcome of lookup of a single IP address. It is either
// a result or an error message, never both.
type Record struct {
	Result *ProviderLookupResult
	Error  string
}

func (r Record) OK() bool {
	return r.Result != nil && r.Error == ""
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.OK() {
		return marshalJSON(r.Result, "")
	}

	return marshalJSON(struct {
		Error string `json:"Error"`
	}{r.Error}, "")
}

type resultSetEntry struct {
	key    string
	record Record
}

// ResultSet is an ordered mapping of "<index>. <ip>" keys to records.
// Keys follow an insertion order, JSON representation respects that.
type ResultSet struct {
	entries []resultSetEntry
	index   map[string]int
}

// Add appends a record for ip. index is 1-based position of ip in the
// input list. Returns a key of the record.
func (r *ResultSet) Add(index int, ip string, record Record) string {
	key := ResultKey(index, ip)

	if pos, ok := r.index[key]; ok {
		r.entries[pos].record = record

		return key
	}

	r.index[key] = len(r.entries)
	r.entries = append(r.entries, resultSetEntry{
		key:    key,
		record: record,
	})

	return key
}

func (r *ResultSet) Get(key string) (Record, bool) {
	pos, ok := r.index[key]
	if !ok {
		return Record{}, false
	}

	return r.entries[pos].record, true
}

func (r *ResultSet) Keys() []string {
	rv := make([]string, len(r.entries))

	for i := range r.entries {
		rv[i] = r.entries[i].key
	}

	return rv
}

func (r *ResultSet) Len() int {
	return len(r.entries)
}

func (r *ResultSet) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte('{')

	for i := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalJSON(r.entries[i].key, "")
		if err != nil {
			return nil, err
		}

		value, err := marshalJSON(r.entries[i].record, "")
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ResultKey builds a key of ResultSet: "1. 8.8.8.8".
func ResultKey(index int, ip string) string {
	return strconv.Itoa(index) + ". " + ip
}

func NewResultSet(capacity int) *ResultSet {
	return &ResultSet{
		entries: make([]resultSetEntry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// marshalJSON is json.Marshal which keeps <, > and & as is. Non-empty
// indent gives the same layout as json.MarshalIndent with empty prefix.
func marshalJSON(v interface{}, indent string) ([]byte, error) {
	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)

	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

package schemalabel

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// keyCount is the result of counting row keys, with keys in first-seen order.
type keyCount struct {
	counts map[string]int
	order  []string
	rows   int
}

// countRows walks the rows of data. ok is false when data is not a
// collection or one of its rows is not a keyed object.
func countRows(data any) (kc keyCount, ok bool) {
	var rows []any
	switch t := normalize(data).(type) {
	case []any:
		rows = t
	case map[string]any:
		names := sortedKeys(t)
		rows = make([]any, len(names))
		for i, name := range names {
			rows[i] = t[name]
		}
	default:
		return kc, false
	}

	kc = keyCount{counts: map[string]int{}, rows: len(rows)}
	for _, row := range rows {
		obj, isObj := normalize(row).(map[string]any)
		if !isObj {
			return kc, false
		}
		for _, key := range sortedKeys(obj) {
			if kc.counts[key] == 0 {
				kc.order = append(kc.order, key)
			}
			kc.counts[key]++
		}
	}
	return kc, true
}

// CountObjectKeys counts, for every key, how many rows of data contain it.
// data is a sequence or keyed collection of objects. The result is nil when
// data is not a collection or any row is not a keyed object (for example a
// sequence or nil).
func CountObjectKeys(data any) map[string]int {
	kc, ok := countRows(data)
	if !ok {
		return nil
	}
	return kc.counts
}

// IsTableLike returns the column names to use when data is shown as a table,
// or an empty slice when it should not be. Unless force is set, data only
// qualifies when keys occur in more than half of the rows on average.
func IsTableLike(data any, force bool) []string { return Default().IsTableLike(data, force) }

// IsTableLike is the Formatter variant of IsTableLike.
func (f *Formatter) IsTableLike(data any, force bool) []string {
	kc, ok := countRows(data)
	if !ok {
		f.log.Debug("data is not a collection of objects", zap.String("type", fmt.Sprintf("%T", data)))
		return []string{}
	}
	if force {
		return append([]string{}, kc.order...)
	}
	if len(kc.order) == 0 {
		return []string{}
	}
	sum := 0
	for _, n := range kc.counts {
		sum += n
	}
	avg := float64(sum) / float64(len(kc.order))
	if avg > float64(kc.rows)/2 {
		return append([]string{}, kc.order...)
	}
	f.log.Debug("rows share too few keys", zap.Float64("avg", avg), zap.Int("rows", kc.rows))
	return []string{}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

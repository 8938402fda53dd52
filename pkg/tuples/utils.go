/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package tuples

import (
	"strconv"

	"github.com/voedger/kommon/pkg/objects"
)

func equals(t ITuple, other any) bool {
	o, ok := other.(ITuple)
	if !ok || objects.IsNull(o) || o.Arity() != t.Arity() {
		return false
	}
	ov := o.Values()
	for i, v := range t.Values() {
		if !objects.EqualAny(v, ov[i]) {
			return false
		}
	}
	return true
}

func hashCode(t ITuple) int32 {
	values := t.Values()
	if len(values) == 0 {
		return objects.HashObjects(values)
	}
	return objects.HashAll(values[0], values[1:]...)
}

// Returns "TypeName{value1=.., value2=..}"
func toString(t ITuple) string {
	b := objects.NewToStringBuilder(t)
	for i, v := range t.Values() {
		b.Add("value"+strconv.Itoa(i+1), v)
	}
	return b.String()
}

// Copyright 2026 The Mayfig Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mayfig

// valueVisitor implements AnyVisitor to build an untyped Value tree out
// of whatever shape DecodeAny finds next. A tagged variant's payload is
// always decoded as a sequence of values, never as a map.
type valueVisitor struct {
	result Value
}

func (v *valueVisitor) VisitBool(b bool) error {
	v.result = BoolValue(b)
	return nil
}

func (v *valueVisitor) VisitNumber(n Number) error {
	v.result = NumberValue(n)
	return nil
}

func (v *valueVisitor) VisitString(s string) error {
	v.result = StringValue(s)
	return nil
}

func (v *valueVisitor) VisitSeq(acc *SeqAccess) error {
	var seq SeqValue
	for {
		has, err := acc.HasNext()
		if err != nil {
			return err
		}
		if !has {
			break
		}
		elem, err := DecodeValue(acc.d)
		if err != nil {
			return err
		}
		seq = append(seq, elem)
	}
	v.result = seq
	return nil
}

func (v *valueVisitor) VisitMap(acc *MapAccess) error {
	m := NewMapValue()
	for {
		has, err := acc.HasNextEntry()
		if err != nil {
			return err
		}
		if !has {
			break
		}
		keyVisitor := &valueVisitor{}
		if err := acc.KeyDecoder().DecodeAny(keyVisitor); err != nil {
			return err
		}
		if err := acc.ExpectSeparator(); err != nil {
			return err
		}
		val, err := DecodeValue(acc.d)
		if err != nil {
			return err
		}
		m.Set(keyVisitor.result, val)
	}
	v.result = m
	return nil
}

func (v *valueVisitor) VisitTagged(tag string, payload *SeqAccess) error {
	var items []Value
	for {
		has, err := payload.HasNext()
		if err != nil {
			return err
		}
		if !has {
			break
		}
		elem, err := DecodeValue(payload.d)
		if err != nil {
			return err
		}
		items = append(items, elem)
	}
	v.result = TaggedValue{Tag: tag, Payload: items}
	return nil
}

// DecodeValue decodes a single untyped Value from d, using the standard
// context-sensitive "any" dispatch. It is the building block both for
// Unmarshal and for a schema-driven consumer that wants to capture an
// unknown sub-tree (e.g. a catch-all config section) without abandoning
// its own typed decode of the surrounding document.
func DecodeValue(d *Decoder) (Value, *Error) {
	vv := &valueVisitor{}
	if err := d.DecodeAny(vv); err != nil {
		return nil, err
	}
	return vv.result, nil
}

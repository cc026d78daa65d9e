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

// EncodeValue writes v through e, dispatching on v's concrete type. A
// TaggedValue's payload always writes as a bracketed sequence, even when
// empty (`"tag" [ ]`), mirroring the decode side's "tagged payload is
// always Seq[Value]" rule (value_de.go); a tag with no brackets would
// decode back as a plain string.
func EncodeValue(e *Encoder, v Value) *Error {
	switch vv := v.(type) {
	case StringValue:
		return e.EncodeString(string(vv))
	case NumberValue:
		return e.EncodeNumber(Number(vv))
	case BoolValue:
		return e.EncodeBool(bool(vv))
	case SeqValue:
		return encodeSeqValue(e, vv)
	case *MapValue:
		return encodeMapValue(e, vv)
	case TaggedValue:
		return encodeTaggedValue(e, vv)
	default:
		return Custom("mayfig: unknown Value implementation %T", v)
	}
}

func encodeSeqValue(e *Encoder, seq SeqValue) *Error {
	se, err := e.BeginSeq()
	if err != nil {
		return err
	}
	for _, elem := range seq {
		if err := se.WriteElement(ProduceValue(elem)); err != nil {
			return err
		}
	}
	return e.EndSeq()
}

func encodeMapValue(e *Encoder, m *MapValue) *Error {
	me, err := e.BeginMap()
	if err != nil {
		return err
	}
	keys, values := m.Entries()
	for i := range keys {
		k, val := keys[i], values[i]
		if err := me.WriteEntry(
			func(ke *Encoder) *Error { return ke.EncodeMapKey(k) },
			func(ve *Encoder) *Error { return ve.EncodeMapValue(val) },
		); err != nil {
			return err
		}
	}
	return e.EndMap(me)
}

func encodeTaggedValue(e *Encoder, t TaggedValue) *Error {
	if err := e.EncodeString(t.Tag); err != nil {
		return err
	}
	if err := e.write(" "); err != nil {
		return err
	}
	se, err := e.BeginSeq()
	if err != nil {
		return err
	}
	for _, elem := range t.Payload {
		if err := se.WriteElement(ProduceValue(elem)); err != nil {
			return err
		}
	}
	return e.EndSeq()
}

// ProduceValue adapts v to a Producer, so any Value can be passed directly
// to a SeqEncoder.WriteElement, a MapEncoder.WriteEntry value callback, or
// used as a document root. This lets schema-driven callers mix raw Value
// elements into an otherwise typed encode without hand-writing a Producer.
func ProduceValue(v Value) Producer {
	return producerFunc(func(e *Encoder) *Error { return EncodeValue(e, v) })
}

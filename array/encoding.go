// Copyright 2025 go-highway Authors
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

package array

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Serialized forms. Data and masks hold the logical elements in row-major
// order without padding; decoding rejects a length that does not match the
// shape.
type arrayWire struct {
	Shape Shape     `json:"shape" yaml:"shape"`
	Data  []float32 `json:"data" yaml:"data,flow"`
}

type maskWire struct {
	Shape Shape  `json:"shape" yaml:"shape"`
	Masks []bool `json:"masks" yaml:"masks,flow"`
}

// decodeBackend is the backend a decoded value uses: the receiver's own when
// it was already built by a factory, the default otherwise.
func decodeBackend(shape Shape, b Backend) Backend {
	if shape == nil {
		return DefaultBackend()
	}
	return b
}

// MarshalJSON encodes a as {"shape": [...], "data": [...]}. Arrays holding
// NaN or infinities cannot be encoded as JSON.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrayWire{Shape: a.shape, Data: a.ToFlat()})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (a *Array) UnmarshalJSON(data []byte) error {
	var w arrayWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return a.decode(w)
}

// MarshalYAML encodes a as a mapping with shape and data sequences.
func (a *Array) MarshalYAML() (any, error) {
	return arrayWire{Shape: a.shape, Data: a.ToFlat()}, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML.
func (a *Array) UnmarshalYAML(node *yaml.Node) error {
	var w arrayWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return a.decode(w)
}

func (a *Array) decode(w arrayWire) error {
	dec, err := FromFlat(w.Shape, w.Data, WithBackend(decodeBackend(a.shape, a.backend)))
	if err != nil {
		return err
	}
	*a = *dec
	return nil
}

// MarshalJSON encodes m as {"shape": [...], "masks": [...]}.
func (m *Mask) MarshalJSON() ([]byte, error) {
	return json.Marshal(maskWire{Shape: m.shape, Masks: m.ToFlat()})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (m *Mask) UnmarshalJSON(data []byte) error {
	var w maskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return m.decode(w)
}

// MarshalYAML encodes m as a mapping with shape and masks sequences.
func (m *Mask) MarshalYAML() (any, error) {
	return maskWire{Shape: m.shape, Masks: m.ToFlat()}, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML.
func (m *Mask) UnmarshalYAML(node *yaml.Node) error {
	var w maskWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return m.decode(w)
}

func (m *Mask) decode(w maskWire) error {
	dec, err := MaskFromFlat(w.Shape, w.Masks, WithBackend(decodeBackend(m.shape, m.backend)))
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}

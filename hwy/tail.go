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

package hwy

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of a row when its length
// is not a multiple of Lanes.
//
// Example:
//
//	remaining := n % hwy.Lanes
//	if remaining > 0 {
//	    m := hwy.TailMask(remaining)
//	    acc = hwy.IfThenElse(m, hwy.Add(acc, v), acc)
//	}
func TailMask(count int) Mask {
	if count <= 0 {
		return 0
	}
	if count >= Lanes {
		return AllLanes
	}
	return Mask(1)<<uint(count) - 1
}

// RowTailMask returns the mask of valid lanes in the last register of a row
// holding n elements. A row whose length is a multiple of Lanes has a full
// tail register; an empty row has no valid lanes.
func RowTailMask(n int) Mask {
	if n <= 0 {
		return 0
	}
	return TailMask((n-1)%Lanes + 1)
}

// RegistersFor returns the number of registers needed to hold n elements.
func RegistersFor(n int) int {
	return (n + Lanes - 1) / Lanes
}

// AlignedSize rounds size up to the next multiple of Lanes.
func AlignedSize(size int) int {
	return RegistersFor(size) * Lanes
}

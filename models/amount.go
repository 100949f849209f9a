// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a reward value reported by the platform. The API is not consistent
// about its encoding, so both JSON numbers and numeric strings are accepted.
type Amount float64

// UnmarshalJSON accepts 12.5, "12.5" and null (decoded as zero).
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*a = 0
		return nil
	case float64:
		*a = Amount(value)
		return nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", value, err)
		}
		*a = Amount(f)
		return nil
	default:
		return fmt.Errorf("invalid amount type %T", v)
	}
}

// Float64 returns the amount as a plain float.
func (a Amount) Float64() float64 {
	return float64(a)
}

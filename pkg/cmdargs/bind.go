// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import "strconv"

// Bind binds the tokens of s to params and returns the values in
// declaration order.
//
// Flagged parameters are extracted first so that their values never get
// mistaken for positional arguments. Positional arguments then take the
// remaining tokens in order. Tokens left over are an error unless an
// Excess parameter collects them.
func Bind(params []Param, s *Stream) (Values, error) {
	if err := ValidateParams(params); err != nil {
		return Values{}, err
	}

	raw := make([]any, len(params))
	for i, p := range params {
		if !p.IsOption() {
			continue
		}
		v, err := s.TakeOption(p)
		if err != nil {
			return Values{}, err
		}
		raw[i] = v
	}

	vals := newValues(len(params))
	hasExcess := false
	for i, p := range params {
		if p.IsExcess() {
			hasExcess = true
			vals.set(p.Name, nil)
			continue
		}
		v := raw[i]
		if v == nil {
			if p.AcceptsArgument() {
				var err error
				v, err = s.TakeArgument(p)
				if err != nil {
					return Values{}, err
				}
			}
			if v == nil {
				v = p.Default
			}
		}
		if v == nil && p.Type != Bool && !p.optional() {
			if p.AcceptsArgument() {
				return Values{}, promptf(p.Name, "Argument `%s` is required.", p.Name)
			}
			return Values{}, promptf(p.Name, "Option `%s` is required.", p.hint())
		}
		v, err := convert(p, v)
		if err != nil {
			return Values{}, err
		}
		vals.set(p.Name, v)
	}

	if hasExcess {
		rest := s.TakeAll()
		for _, p := range params {
			if p.IsExcess() {
				vals.set(p.Name, append([]string{}, rest...))
			}
		}
		return vals, nil
	}
	if !s.AllUsed() {
		return Values{}, promptf("", "You passed invalid argument to the command.")
	}
	return vals, nil
}

// convert turns raw string tokens of Int parameters into ints.
func convert(p Param, v any) (any, error) {
	if p.Type != Int {
		return v, nil
	}
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if p.AcceptsArgument() && !p.OptionBound() {
			return nil, promptf(p.Name, "Argument `%s` must be an integer.", p.Name)
		}
		return nil, promptf(p.Name, "Option `%s` must be an integer.", p.hint())
	}
	return n, nil
}

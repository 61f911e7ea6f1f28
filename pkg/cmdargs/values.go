// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

// Values holds bound parameter values in declaration order. A value is a
// string, bool, int, []string or nil when the parameter was not set.
type Values struct {
	names []string
	vals  map[string]any
}

func newValues(n int) Values {
	return Values{
		names: make([]string, 0, n),
		vals:  make(map[string]any, n),
	}
}

func (v *Values) set(name string, val any) {
	if _, ok := v.vals[name]; !ok {
		v.names = append(v.names, name)
	}
	v.vals[name] = val
}

// Len returns the number of bound parameters.
func (v Values) Len() int {
	return len(v.names)
}

// Names returns the parameter names in declaration order.
func (v Values) Names() []string {
	return append([]string(nil), v.names...)
}

// Lookup returns the value bound to name. The boolean is false when name
// is not a parameter of the command.
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v.vals[name]
	return val, ok
}

// IsSet reports whether name has a non-nil value.
func (v Values) IsSet(name string) bool {
	return v.vals[name] != nil
}

// String returns the string value of name, or "".
func (v Values) String(name string) string {
	s, _ := v.vals[name].(string)
	return s
}

// Bool returns the bool value of name, or false.
func (v Values) Bool(name string) bool {
	b, _ := v.vals[name].(bool)
	return b
}

// Int returns the int value of name, or 0.
func (v Values) Int(name string) int {
	i, _ := v.vals[name].(int)
	return i
}

// Strings returns the []string value of name, or nil.
func (v Values) Strings(name string) []string {
	s, _ := v.vals[name].([]string)
	return s
}

// Each calls fn for every parameter in declaration order.
func (v Values) Each(fn func(name string, val any)) {
	for _, name := range v.names {
		fn(name, v.vals[name])
	}
}

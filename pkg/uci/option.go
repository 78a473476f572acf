package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string { return opt.Name }

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string { return opt.Name }

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min {
		v = opt.Min
	} else if v > opt.Max {
		v = opt.Max
	}
	*opt.Value = v
	return nil
}

// StringOption holds a free-form value, used for SyzygyPath — no
// tablebase probing is wired to it (see DESIGN.md), but UCI front ends
// expect the option to be announced and settable regardless.
type StringOption struct {
	Name  string
	Value *string
}

func (opt *StringOption) UciName() string { return opt.Name }

func (opt *StringOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v", opt.Name, "string", *opt.Value)
}

func (opt *StringOption) Set(s string) error {
	*opt.Value = s
	return nil
}

// ComboOption restricts the value to a fixed set, used for UCI_Variant.
type ComboOption struct {
	Name   string
	Values []string
	Value  *string
}

func (opt *ComboOption) UciName() string { return opt.Name }

func (opt *ComboOption) UciString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "option name %v type combo default %v", opt.Name, *opt.Value)
	for _, v := range opt.Values {
		fmt.Fprintf(&sb, " var %v", v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Values {
		if strings.EqualFold(v, s) {
			*opt.Value = v
			return nil
		}
	}
	return errors.New("argument out of range")
}

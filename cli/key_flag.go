package cli

import "strconv"
import "github.com/urfave/cli/v3"

// the urfave/cli package only supports int64 flags, the shift key is a plain int
type KeyFlag = cli.FlagBase[int, cli.IntegerConfig, keyValue]

type keyValue struct {
	val  *int
	base int
}

// Below functions are to satisfy the ValueCreator interface
func (k keyValue) Create(val int, p *int, c cli.IntegerConfig) cli.Value {
	*p = val
	return &keyValue{
		val:  p,
		base: c.Base,
	}
}

func (k keyValue) ToString(b int) string {
	return strconv.Itoa(b)
}

// Below functions are to satisfy the flag.Value interface

// any sign or magnitude that fits an int is a valid key, the cipher reduces it
func (k *keyValue) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*k.val = v
	return nil
}

func (k *keyValue) Get() any { return *k.val }

func (k *keyValue) String() string { return strconv.Itoa(*k.val) }

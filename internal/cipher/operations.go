package cipher

import (
	"context"
	"fmt"

	"github.com/RowanDark/Scytale/internal/alphabet"
)

// Registered operation names.
const (
	OpShiftEncrypt  = "shift_encrypt"
	OpShiftDecrypt  = "shift_decrypt"
	OpAffineEncrypt = "affine_encrypt"
	OpAffineDecrypt = "affine_decrypt"
	OpAtbash        = "atbash"
)

// intParam extracts an integer parameter. JSON unmarshaling delivers numbers
// as float64, so both forms are accepted.
func intParam(params map[string]interface{}, name string) (int, error) {
	raw, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%s parameter required", name)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s parameter must be an integer, got %v", name, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s parameter must be an integer, got %T", name, raw)
	}
}

// alphabetParam resolves the optional "alphabet" parameter, defaulting to
// uppercase English.
func alphabetParam(params map[string]interface{}) (alphabet.Alphabet, error) {
	raw, ok := params["alphabet"]
	if !ok {
		return alphabet.Upper, nil
	}

	s, ok := raw.(string)
	if !ok {
		return alphabet.Alphabet{}, fmt.Errorf("alphabet parameter must be a string, got %T", raw)
	}
	return alphabet.New(s)
}

// ShiftEncryptOp applies a shift cipher
type ShiftEncryptOp struct {
	BaseOperation
	decrypt bool
}

func (op *ShiftEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	shift, err := intParam(params, "shift")
	if err != nil {
		return nil, err
	}
	a, err := alphabetParam(params)
	if err != nil {
		return nil, err
	}

	m := ShiftMapping(shift, a)
	if op.decrypt {
		return []byte(m.Decrypt(string(input))), nil
	}
	return []byte(m.Encrypt(string(input))), nil
}

// AffineEncryptOp applies an affine cipher
type AffineEncryptOp struct {
	BaseOperation
	decrypt bool
}

func (op *AffineEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	aCoeff, err := intParam(params, "a")
	if err != nil {
		return nil, err
	}
	b, err := intParam(params, "b")
	if err != nil {
		return nil, err
	}
	a, err := alphabetParam(params)
	if err != nil {
		return nil, err
	}

	m, err := AffineMapping(aCoeff, b, a)
	if err != nil {
		return nil, err
	}
	if op.decrypt {
		return []byte(m.Decrypt(string(input))), nil
	}
	return []byte(m.Encrypt(string(input))), nil
}

// AtbashOp applies the atbash cipher. Atbash is self-inverse, so the same
// operation serves as its own reverse.
type AtbashOp struct {
	BaseOperation
}

func (op *AtbashOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	a, err := alphabetParam(params)
	if err != nil {
		return nil, err
	}
	return []byte(AtbashMapping(a).Encrypt(string(input))), nil
}

// init registers the classical cipher operations
func init() {
	shiftEncrypt := &ShiftEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        OpShiftEncrypt,
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a shift cipher (param: shift)",
		},
	}
	shiftDecrypt := &ShiftEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        OpShiftDecrypt,
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt a shift cipher (param: shift)",
		},
		decrypt: true,
	}
	shiftEncrypt.ReverseOp = shiftDecrypt
	shiftDecrypt.ReverseOp = shiftEncrypt

	affineEncrypt := &AffineEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        OpAffineEncrypt,
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with an affine cipher (params: a, b; a must be coprime with the alphabet length)",
		},
	}
	affineDecrypt := &AffineEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        OpAffineDecrypt,
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt an affine cipher (params: a, b)",
		},
		decrypt: true,
	}
	affineEncrypt.ReverseOp = affineDecrypt
	affineDecrypt.ReverseOp = affineEncrypt

	atbash := &AtbashOp{
		BaseOperation: BaseOperation{
			NameValue:        OpAtbash,
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Apply the atbash cipher (self-inverse alphabet reversal)",
		},
	}
	atbash.ReverseOp = atbash

	RegisterOperation(shiftEncrypt)
	RegisterOperation(shiftDecrypt)
	RegisterOperation(affineEncrypt)
	RegisterOperation(affineDecrypt)
	RegisterOperation(atbash)
}

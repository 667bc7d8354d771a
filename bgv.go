package cryptoburger

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

const bgvScheme = "bgv"

// DefaultBGVParameters are 128-bit secure parameters with plaintext modulus 65537.
var DefaultBGVParameters = heint.ParametersLiteral{
	LogN: 14,
	Q: []uint64{0x10000048001, 0x20008001, 0x1ffc8001,
		0x20040001, 0x1ffc0001, 0x1ffb0001,
		0x20068001, 0x1ff60001, 0x200b0001,
		0x200d0001, 0x1ff18001, 0x200f8001},
	P:                []uint64{0x10000140001, 0x7ffffb0001},
	PlaintextModulus: 0x10001,
}

// BGV packs a whole vector into the slots of one lattice ciphertext. Unlike
// the Paillier backends the ciphertext is not a Vector; cooks for it work on
// *Packed.
type BGV struct {
	params    heint.Parameters
	encoder   *heint.Encoder
	encryptor *rlwe.Encryptor
	decryptor *rlwe.Decryptor
	evaluator *heint.Evaluator
}

// Packed is an encrypted burger of Dimension elements.
type Packed struct {
	ct  *rlwe.Ciphertext
	dim int
}

func (p *Packed) Clone() *Packed {
	return &Packed{ct: p.ct.CopyNew(), dim: p.dim}
}

func (p *Packed) Dimension() int {
	return p.dim
}

// NewBGV builds the parameters and generates a fresh key pair.
func NewBGV(literal heint.ParametersLiteral) (*BGV, error) {
	params, err := heint.NewParametersFromLiteral(literal)
	if err != nil {
		return nil, fmt.Errorf("invalid BGV parameters: %w", err)
	}
	sk, pk := heint.NewKeyGenerator(params).GenKeyPairNew()
	return &BGV{
		params:    params,
		encoder:   heint.NewEncoder(params),
		encryptor: heint.NewEncryptor(params, pk),
		decryptor: heint.NewDecryptor(params, sk),
		evaluator: heint.NewEvaluator(params, nil),
	}, nil
}

// T returns the plaintext modulus.
func (b *BGV) T() *big.Int {
	return new(big.Int).SetUint64(b.params.PlaintextModulus())
}

// Slots returns the largest dimension a Packed can hold.
func (b *BGV) Slots() int {
	return b.params.MaxSlots()
}

// slots converts v to a full slot vector, every element in [0, T).
func (b *BGV) slots(v *Vector) ([]uint64, error) {
	if v.Dimension() > b.Slots() {
		return nil, &SlotCapacityError{Dimension: v.Dimension(), Slots: b.Slots()}
	}
	t := b.T()
	values := make([]uint64, b.Slots())
	for i, x := range v.values {
		if err := checkDomain(bgvScheme, x, t); err != nil {
			return nil, err
		}
		values[i] = x.Uint64()
	}
	return values, nil
}

// EncryptVector encrypts v into one ciphertext.
func (b *BGV) EncryptVector(v *Vector) (*Packed, error) {
	values, err := b.slots(v)
	if err != nil {
		return nil, err
	}
	pt := heint.NewPlaintext(b.params, b.params.MaxLevel())
	if err = b.encoder.Encode(values, pt); err != nil {
		return nil, err
	}
	ct, err := b.encryptor.EncryptNew(pt)
	if err != nil {
		return nil, err
	}
	return &Packed{ct: ct, dim: v.Dimension()}, nil
}

// DecryptVector recovers the burger held by p.
func (b *BGV) DecryptVector(p *Packed) (*Vector, error) {
	values := make([]uint64, b.Slots())
	if err := b.encoder.Decode(b.decryptor.DecryptNew(p.ct), values); err != nil {
		return nil, err
	}
	r := NewVector(p.dim)
	for i := range r.values {
		r.values[i].SetUint64(values[i])
	}
	return r, nil
}

// AddVectorCook adds the plaintext vector w slot-wise.
func (b *BGV) AddVectorCook(w *Vector) Cook[*Packed] {
	w = reduce(w, b.T())
	return NamedCook[*Packed]("packed add "+w.String(), func(x *Packed) (*Packed, error) {
		if x.dim != w.Dimension() {
			return nil, &DimensionMismatchError{Op: "add", Left: x.dim, Right: w.Dimension()}
		}
		values, err := b.slots(w)
		if err != nil {
			return nil, err
		}
		ct, err := b.evaluator.AddNew(x.ct, values)
		if err != nil {
			return nil, err
		}
		return &Packed{ct: ct, dim: x.dim}, nil
	})
}

// AddScalarCook adds k to every slot.
func (b *BGV) AddScalarCook(k *big.Int) Cook[*Packed] {
	k = new(big.Int).Mod(k, b.T())
	return NamedCook[*Packed]("packed add "+k.String(), func(x *Packed) (*Packed, error) {
		// the evaluator scales its scalar operand in place
		ct, err := b.evaluator.AddNew(x.ct, new(big.Int).Set(k))
		if err != nil {
			return nil, err
		}
		return &Packed{ct: ct, dim: x.dim}, nil
	})
}

// ScaleCook multiplies every slot by k.
func (b *BGV) ScaleCook(k *big.Int) Cook[*Packed] {
	k = new(big.Int).Mod(k, b.T())
	return NamedCook[*Packed]("packed scale "+k.String(), func(x *Packed) (*Packed, error) {
		ct, err := b.evaluator.MulNew(x.ct, new(big.Int).Set(k))
		if err != nil {
			return nil, err
		}
		return &Packed{ct: ct, dim: x.dim}, nil
	})
}

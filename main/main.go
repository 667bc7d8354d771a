package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ontanj/cryptoburger"
)

// usage: main [setting.json] [element...]
func main() {
	setting := cryptoburger.DefaultSetting()
	args := os.Args[1:]
	if len(args) > 0 && strings.HasSuffix(args[0], ".json") {
		var err error
		setting, err = cryptoburger.LoadSetting(args[0])
		if err != nil {
			fmt.Println("Error when loading setting:", err)
			os.Exit(1)
		}
		args = args[1:]
	}
	level, err := setting.Level()
	if err != nil {
		fmt.Println("Error when parsing log level:", err)
		os.Exit(1)
	}
	logger := cryptoburger.GetLogger("cryptoburger", os.Stdout, level)

	burger, err := parseBurger(args)
	if err != nil {
		logger.Err(err)
		os.Exit(1)
	}

	decrypted, err := serve(setting, logger, burger)
	if err != nil {
		logger.Err(err)
		os.Exit(1)
	}
	summary, err := cryptoburger.Summarize(decrypted)
	if err == nil {
		logger.Info("mean %.2f median %.2f stddev %.2f", summary.Mean, summary.Median, summary.StdDev)
	}
}

// parseBurger reads decimal elements, defaulting to (1, 0, 1).
func parseBurger(args []string) (*cryptoburger.Vector, error) {
	if len(args) == 0 {
		return cryptoburger.VectorOfInts(1, 0, 1), nil
	}
	burger := cryptoburger.NewVector(len(args))
	for i, a := range args {
		x, ok := new(big.Int).SetString(a, 10)
		if !ok {
			return nil, fmt.Errorf("cannot parse element %q", a)
		}
		if err := burger.Set(i, x); err != nil {
			return nil, err
		}
	}
	return burger, nil
}

// serve cooks burger encrypted on the configured scheme and checks the result
// against the plaintext kitchen reduced modulo the plaintext modulus.
func serve(setting cryptoburger.Setting, logger *cryptoburger.Logger, burger *cryptoburger.Vector) (*cryptoburger.Vector, error) {
	offset := cryptoburger.NewVectorFilled(burger.Dimension(), big.NewInt(3))
	factor := big.NewInt(2)

	var modulus *big.Int
	var result *cryptoburger.Vector
	var err error
	if setting.Scheme == cryptoburger.SchemeBGV {
		result, modulus, err = cookPacked(setting, logger, burger, offset, factor)
	} else {
		result, modulus, err = cookAdditive(setting, logger, burger, offset, factor)
	}
	if err != nil {
		return nil, err
	}

	plain := cryptoburger.NewKitchen(
		cryptoburger.Scale(factor),
		cryptoburger.AddVector(offset),
		cryptoburger.ModuloScalar(modulus),
	)
	expected, err := plain.Apply(burger)
	if err != nil {
		return nil, err
	}
	fmt.Println("decryp =", result)
	fmt.Println("plain  =", expected)
	if !result.Equal(expected) {
		return nil, errors.New("homomorphism broken")
	}
	return result, nil
}

// Bob encrypts, Alice cooks on ciphertexts with the public key only, Bob decrypts.
func cookAdditive(setting cryptoburger.Setting, logger *cryptoburger.Logger,
	burger, offset *cryptoburger.Vector, factor *big.Int) (*cryptoburger.Vector, *big.Int, error) {
	keys, err := setting.NewAdditive()
	if err != nil {
		return nil, nil, err
	}
	encrypted, err := cryptoburger.EncryptVectorConcurrent(keys.PublicKey, burger, setting.Workers)
	if err != nil {
		return nil, nil, err
	}
	fmt.Println("burger =", burger)
	fmt.Println("encryp =", encrypted)

	// Bob sends encrypted and the public key to Alice
	kitchen := cryptoburger.NewKitchen(
		cryptoburger.EncryptedScale(keys.PublicKey, factor),
		cryptoburger.EncryptedAddVector(keys.PublicKey, offset),
	).WithLogger(logger)
	r, err := kitchen.Apply(encrypted)
	if err != nil {
		return nil, nil, err
	}
	fmt.Println("aliceR =", r)

	// Alice sends r back to Bob
	d, err := cryptoburger.DecryptVectorConcurrent(keys.SecretKey, r, setting.Workers)
	return d, keys.PublicKey.N(), err
}

func cookPacked(setting cryptoburger.Setting, logger *cryptoburger.Logger,
	burger, offset *cryptoburger.Vector, factor *big.Int) (*cryptoburger.Vector, *big.Int, error) {
	scheme, err := setting.NewPacked()
	if err != nil {
		return nil, nil, err
	}
	encrypted, err := scheme.EncryptVector(burger)
	if err != nil {
		return nil, nil, err
	}
	fmt.Println("burger =", burger)

	kitchen := cryptoburger.NewKitchen(
		scheme.ScaleCook(factor),
		scheme.AddVectorCook(offset),
	).WithLogger(logger)
	r, err := kitchen.Apply(encrypted)
	if err != nil {
		return nil, nil, err
	}
	d, err := scheme.DecryptVector(r)
	return d, scheme.T(), err
}

package mlkem

import "errors"

// ErrInvalidParameter is returned when a ParametersLiteral field is out of
// the range FIPS 203 allows.
var ErrInvalidParameter = errors.New("mlkem: invalid parameter")

// ErrEntropyFailure is returned when the configured entropy source fails
// to produce the randomness KeyGen or Encapsulate need.
var ErrEntropyFailure = errors.New("mlkem: entropy source failure")

// ErrMalformedInput is returned when a decapsulation key, encapsulation
// key or ciphertext does not have the byte length its parameter set
// requires.
var ErrMalformedInput = errors.New("mlkem: malformed input")

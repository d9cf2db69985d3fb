package mlkem

import "fmt"

// LiteralByName looks up one of the three FIPS 203-fixed parameter sets by
// its canonical name ("ML-KEM-512", "ML-KEM-768" or "ML-KEM-1024").
func LiteralByName(name string) (ParametersLiteral, error) {
	switch name {
	case ML_KEM_512.Name:
		return ML_KEM_512, nil
	case ML_KEM_768.Name:
		return ML_KEM_768, nil
	case ML_KEM_1024.Name:
		return ML_KEM_1024, nil
	default:
		return ParametersLiteral{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidParameter, name)
	}
}

// Package recognition defines the contract for extracting a meter value
// from a photo. Implementations live in the infrastructure layer.
package recognition

import "context"

// Service turns a meter photo into the digits printed on its odometer.
// Implementations return best-effort free-form text; callers are expected
// to strip anything that is not a digit.
type Service interface {
	RecognizeDigits(ctx context.Context, photoBase64 string) (string, error)
}

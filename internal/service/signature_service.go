package service

import (
	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/payfast"
)

type SignatureService struct {
	passphrase string
}

func NewSignatureService(passphrase string) *SignatureService {
	return &SignatureService{passphrase: passphrase}
}

// Sign accepts only string values; anything else is a parameter type error
// naming the offending key.
func (s *SignatureService) Sign(raw map[string]any) (string, error) {
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		str, ok := v.(string)
		if !ok {
			return "", constant.NewError(constant.CodeParamsTypeError).WithData(map[string]string{"field": k})
		}
		fields[k] = str
	}
	return payfast.GenerateSignature(fields, s.passphrase), nil
}

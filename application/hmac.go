package application

type HMAC interface {
	Generate(data []byte) ([]byte, error)
	Verify(data, signature []byte) error
}

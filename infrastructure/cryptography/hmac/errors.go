package hmac

import "errors"

var ErrUnexpectedSignature = errors.New("unexpected signature")

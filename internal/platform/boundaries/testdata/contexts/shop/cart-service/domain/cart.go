package domain

import (
	"strings"

	"example.com/shop/contexts/shop/cart-service/adapters/memory"
	"example.com/shop/contexts/shop/other-service/domain"
)

var _ = strings.TrimSpace

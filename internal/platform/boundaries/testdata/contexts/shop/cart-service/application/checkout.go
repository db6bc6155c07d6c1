package application

import (
	"context"

	"example.com/shop/contexts/shop/cart-service/domain"
	"example.com/shop/internal/platform/db"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

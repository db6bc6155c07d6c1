package memory

import "example.com/shop/internal/platform/db"

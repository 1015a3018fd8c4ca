package rediskey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "swim-shop:itn:42", ITNLock("swim-shop", "42"))
	assert.Equal(t, "swim-shop:catalog:products", CatalogProducts("swim-shop"))
}

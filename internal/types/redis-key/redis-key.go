package rediskey

import "fmt"

// ITNLock guards concurrent notifications for one payment reference.
func ITNLock(project, mPaymentID string) string {
	return fmt.Sprintf("%s:itn:%s", project, mPaymentID)
}

// CatalogProducts holds the cached product list.
func CatalogProducts(project string) string {
	return project + ":catalog:products"
}

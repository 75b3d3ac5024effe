//go:generate mockgen -source=contract.go -destination=./gateway_mocks_test.go -package=packagestatus_test
package packagestatus

type Producer interface {
	Publish(topic string, key string, message []byte) error
}

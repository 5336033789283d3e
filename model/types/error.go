package types

import "fmt"

func NewStrategyNotFoundError(name string) error {
	return fmt.Errorf("strategy %v not found", name)
}

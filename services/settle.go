package services

import (
	"errors"
	"sync"
)

// settle runs every fn concurrently and waits for all of them to finish.
// A failure in one write does not cancel or roll back the others; every
// outcome is observed and any error is returned joined.
func settle(fns ...func() error) error {
	errs := make([]error, len(fns))
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func() error) {
			defer wg.Done()
			errs[i] = fn()
		}(i, fn)
	}
	wg.Wait()
	return errors.Join(errs...)
}

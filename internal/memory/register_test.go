package memory

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	r := NewRegister()
	assert.Empty(t, r.Recall())

	r.Save("14")
	assert.Equal(t, "14", r.Recall())

	r.Save("Error")
	assert.Equal(t, "Error", r.Recall())

	r.Clear()
	assert.Empty(t, r.Recall())
}

func TestRegister_Concurrent(t *testing.T) {
	r := NewRegister()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Save(strconv.Itoa(i))
			_ = r.Recall()
		}(i)
	}
	wg.Wait()

	_, err := strconv.Atoi(r.Recall())
	assert.NoError(t, err)
}

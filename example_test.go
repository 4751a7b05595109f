package alignmem_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/alignmem"
	"github.com/hupe1980/alignmem/host"
)

// Example_alignedAlloc demonstrates a cache-line aligned buffer.
func Example_alignedAlloc() {
	a := alignmem.New()

	p, err := a.AlignedAlloc(64, 100)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Free(p)

	buf := alignmem.Bytes(p, 100)
	copy(buf, "hello")

	fmt.Println(uintptr(p)%64 == 0, string(buf[:5]))
	// Output: true hello
}

// Example_resize demonstrates growing a block.
func Example_resize() {
	a := alignmem.New()

	p, err := a.Calloc(4, 8)
	if err != nil {
		log.Fatal(err)
	}
	alignmem.Bytes(p, 32)[0] = 42

	p, err = a.Resize(p, 4096)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Free(p)

	fmt.Println(alignmem.Bytes(p, 1)[0])
	// Output: 42
}

// Example_overflow demonstrates that overflowing requests never reach the host.
func Example_overflow() {
	counting := host.NewCounting(host.NewGoHeap())
	a := alignmem.New(alignmem.WithHost(counting))

	_, err := a.Calloc(10, ^uintptr(0)/2)
	fmt.Println(errors.Is(err, alignmem.ErrOverflow), counting.Calls())
	// Output: true 0
}

// Example_budget demonstrates a memory budget on top of the Go heap.
func Example_budget() {
	budget := host.NewBudgeted(host.NewGoHeap(), host.BudgetConfig{MemoryLimitBytes: 1 << 10})
	a := alignmem.New(alignmem.WithHost(budget))

	p, err := a.Alloc(512)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Free(p)

	_, err = a.Alloc(1024)
	fmt.Println(errors.Is(err, alignmem.ErrOutOfMemory))
	// Output: true
}

package main

import (
	"fmt"

	"github.com/aglyzov/go-radix/radix16"
)

func main() {
	tr := radix16.NewString[int]()

	tr.Set("cat", 1)
	tr.Set("car", 2)
	tr.Set("carbon", 3)
	tr.Set("dog", 4)

	tr.DebugDump()

	fmt.Println("------")

	if val, ok := tr.Get("car"); ok {
		fmt.Printf("car -> %v\n", val)
	}

	if ref := tr.GetRef("dog"); ref != nil {
		*ref += 10
	}
	val, _ := tr.Get("dog")
	fmt.Printf("dog -> %v\n", val)

	prev, _ := tr.Del("car")
	fmt.Printf("deleted car (was %v), %d keys left\n", prev, tr.Len())

	tr.DebugDump()

	if err := tr.CheckIntegrity(); err != nil {
		panic(err)
	}
}

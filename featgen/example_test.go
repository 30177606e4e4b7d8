// SPDX-License-Identifier: MIT

package featgen_test

import (
	"fmt"

	"github.com/lgleje/CRF/featgen"
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/kinds"
	"github.com/lgleje/CRF/model"
)

// ExampleGenerator collects feature ids from one training sentence and
// enumerates the features of the first position of a new sentence.
func ExampleGenerator() {
	m, _ := model.NewFlat(2)
	g, _ := featgen.New(m, featgen.WithKinds(kinds.NewStart(m), kinds.NewEnd(m), kinds.NewWord(0)))

	train := feature.NewSeq([]string{"the", "cat"}, []int{0, 1})
	_, _ = g.Train(feature.NewSliceIter(train), featgen.DefaultTrainOptions())
	fmt.Println("features:", g.NumFeatures())

	eval := feature.NewSeq([]string{"the", "dog"}, nil)
	_ = g.StartScanAt(eval, 0)
	for g.HasNext() {
		f, _ := g.Next()
		fmt.Println(f.ID, f.Descriptor)
	}

	// Output:
	// features: 6
	// 0 start::0:-1
	// 1 start::1:-1
	// 2 word:the:0:-1
}

// SPDX-License-Identifier: MIT

// Command crffeat collects, inspects and applies CRF feature id tables.
//
//	crffeat collect --config crf.yaml --data train.tsv --out features.txt
//	crffeat count   --config crf.yaml --features features.txt --data eval.tsv
//	crffeat dump    --config crf.yaml --features features.txt --weights weights.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crffeat:", err)
		os.Exit(1)
	}
}

// gen-corpus writes native Go fuzz corpus entries for FuzzTransformString:
// pairs of a random source document and a transformation document aimed at
// it. Rerun it to reseed testdata/fuzz after changing the command set.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	jsontransform "github.com/Magicianred/JsonTransform"
)

var keyPool = []string{"a", "b", "items", "name", "tags", "meta", "id", "total"}

func main() {
	count := flag.Int("n", 32, "Number of corpus entries to generate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outDir := flag.String("out", "testdata/fuzz/FuzzTransformString", "Output directory")
	check := flag.Bool("check", true, "Run each pair through the engine before writing it")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(err)
	}

	fmt.Printf("Generating %d corpus entries into %s (seed %d)\n", *count, *outDir, *seed)
	for i := 0; i < *count; i++ {
		source := randomDocument(rng, 0)
		transformation := randomTransformation(rng, source, 0)

		srcJSON := oj.JSON(source, &ojg.Options{Sort: true})
		trJSON := oj.JSON(transformation, &ojg.Options{Sort: true})

		if *check {
			// A generated pair that panics the engine should fail loudly
			// here, not later inside go test -fuzz.
			res := jsontransform.Transform(source, transformation)
			_ = oj.JSON(res.Document, &ojg.Options{Sort: true})
		}

		entry := fmt.Sprintf("go test fuzz v1\nstring(%q)\nstring(%q)\n", srcJSON, trJSON)
		name := filepath.Join(*outDir, fmt.Sprintf("gen-%04d", i))
		if err := os.WriteFile(name, []byte(entry), 0o644); err != nil {
			fatal(err)
		}
	}
	fmt.Println("Done.")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func randomDocument(rng *rand.Rand, depth int) any {
	if depth >= 3 {
		return randomScalar(rng)
	}
	switch rng.Intn(6) {
	case 0:
		arr := make([]any, rng.Intn(4))
		for i := range arr {
			arr[i] = randomDocument(rng, depth+1)
		}
		return arr
	case 1, 2:
		obj := map[string]any{}
		for _, k := range keyPool {
			if rng.Intn(3) == 0 {
				obj[k] = randomDocument(rng, depth+1)
			}
		}
		return obj
	default:
		return randomScalar(rng)
	}
}

func randomScalar(rng *rand.Rand) any {
	switch rng.Intn(5) {
	case 0:
		return nil
	case 1:
		return rng.Intn(100)
	case 2:
		return rng.Float64() * 10
	case 3:
		return rng.Intn(2) == 0
	default:
		return keyPool[rng.Intn(len(keyPool))]
	}
}

// randomTransformation emits an object mixing plain data with command keys.
// Keys are biased toward ones actually present in source so removes, copies,
// and foreach targets hit real values often enough to be interesting.
func randomTransformation(rng *rand.Rand, source any, depth int) any {
	obj := map[string]any{}
	for i, n := 0, 1+rng.Intn(3); i < n; i++ {
		k := randomKey(rng, source)
		switch rng.Intn(8) {
		case 0:
			obj["$remove:"+k] = nil
		case 1:
			obj["$setnull:"+k] = nil
		case 2:
			obj["$copy:"+keyPool[rng.Intn(len(keyPool))]] = "$." + k
		case 3:
			obj["$union:"+k] = []any{randomScalar(rng), randomScalar(rng)}
		case 4:
			if depth < 2 {
				obj["$foreach:"+k] = randomTransformation(rng, childOf(source, k), depth+1)
			}
		case 5:
			obj["@custom:"+k] = randomScalar(rng)
		default:
			obj[k] = randomDocument(rng, depth+1)
		}
	}
	return obj
}

func randomKey(rng *rand.Rand, source any) string {
	if m, ok := source.(map[string]any); ok && len(m) > 0 && rng.Intn(3) > 0 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys[rng.Intn(len(keys))]
	}
	return keyPool[rng.Intn(len(keyPool))]
}

func childOf(source any, key string) any {
	if m, ok := source.(map[string]any); ok {
		return m[key]
	}
	return nil
}

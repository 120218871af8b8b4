package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/Larriche/galib/bindings/gaschema"
	"github.com/Larriche/galib/evolution"
	"github.com/Larriche/galib/evolution/fitness"
)

// EvolveBatch runs a FlatBuffers BatchRequest and returns a BatchResponse.
// Malformed input yields a response with its error field set. Runs execute
// sequentially on the calling thread; hosts parallelize across batches.
//
//export EvolveBatch
func EvolveBatch(requestPtr unsafe.Pointer, requestLen C.int, responseLen *C.int) unsafe.Pointer {
	var requestBytes []byte
	if requestPtr != nil && requestLen > 0 {
		requestBytes = C.GoBytes(requestPtr, requestLen)
	}

	responseBytes := evolution.EvolveBatch(requestBytes, algorithmForRequest)
	*responseLen = C.int(len(responseBytes))

	// Allocate C memory for response (caller must free)
	cBytes := C.malloc(C.size_t(len(responseBytes)))
	if cBytes == nil {
		*responseLen = 0
		return nil
	}

	// Copy Go bytes to C memory
	C.memcpy(cBytes, unsafe.Pointer(&responseBytes[0]), C.size_t(len(responseBytes)))

	return cBytes
}

//export FreeResponse
func FreeResponse(ptr unsafe.Pointer) {
	C.free(ptr)
}

// algorithmForRequest builds the named reference problem. An empty name
// selects onemax.
func algorithmForRequest(req *gaschema.RunRequest) (evolution.Algorithm, error) {
	problem := string(req.Problem())
	if problem == "" {
		problem = "onemax"
	}
	var target []int
	for i := 0; i < req.TargetLength(); i++ {
		target = append(target, int(req.Target(i)))
	}
	algorithm, err := fitness.New(problem, int(req.ChromosomeLength()), target)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", problem, err)
	}
	return algorithm, nil
}

func main() {} // Required for CGo

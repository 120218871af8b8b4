package evolution

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/Larriche/galib/bindings/gaschema"
)

// Summary is the outcome of one run, as reported to hosts.
type Summary struct {
	RunID          string
	Generations    int
	Fittest        []int
	FittestFitness float64
	History        []GenerationStats
	Error          string
}

// Summary returns the outcome of the last run.
func (c *Controller) Summary() Summary {
	s := Summary{
		RunID:       c.RunID(),
		Generations: c.generations,
		History:     c.statsHistory,
	}
	if c.fittest != nil {
		s.Fittest = c.fittest.Chromosome()
		s.FittestFitness = c.fittest.fitness
	}
	return s
}

// BuildSummary serializes s into builder and returns the table offset.
func BuildSummary(builder *flatbuffers.Builder, s Summary) flatbuffers.UOffsetT {
	// Strings and vectors must be created before the table
	runID := builder.CreateString(s.RunID)
	var errOffset flatbuffers.UOffsetT
	if s.Error != "" {
		errOffset = builder.CreateString(s.Error)
	}

	statOffsets := make([]flatbuffers.UOffsetT, len(s.History))
	for i, st := range s.History {
		gaschema.GenerationStatStart(builder)
		gaschema.GenerationStatAddGeneration(builder, int32(st.Generation))
		gaschema.GenerationStatAddBestFitness(builder, st.BestFitness)
		gaschema.GenerationStatAddAvgFitness(builder, st.AvgFitness)
		statOffsets[i] = gaschema.GenerationStatEnd(builder)
	}
	gaschema.RunSummaryStartHistoryVector(builder, len(statOffsets))
	for i := len(statOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(statOffsets[i])
	}
	history := builder.EndVector(len(statOffsets))

	// Add in reverse order (FlatBuffers convention)
	gaschema.RunSummaryStartFittestVector(builder, len(s.Fittest))
	for i := len(s.Fittest) - 1; i >= 0; i-- {
		builder.PrependInt32(int32(s.Fittest[i]))
	}
	fittest := builder.EndVector(len(s.Fittest))

	gaschema.RunSummaryStart(builder)
	gaschema.RunSummaryAddRunId(builder, runID)
	gaschema.RunSummaryAddGenerations(builder, int32(s.Generations))
	gaschema.RunSummaryAddFittest(builder, fittest)
	gaschema.RunSummaryAddFittestFitness(builder, s.FittestFitness)
	gaschema.RunSummaryAddHistory(builder, history)
	if errOffset != 0 {
		gaschema.RunSummaryAddError(builder, errOffset)
	}
	return gaschema.RunSummaryEnd(builder)
}

// EncodeSummary returns s as a finished FlatBuffer.
func EncodeSummary(s Summary) []byte {
	builder := flatbuffers.NewBuilder(256)
	builder.Finish(BuildSummary(builder, s))
	return builder.FinishedBytes()
}

// DecodeSummary reads a buffer produced by EncodeSummary. A buffer that is
// not a RunSummary yields ErrMalformedBuffer.
func DecodeSummary(buf []byte) (Summary, error) {
	if err := checkRoot(buf); err != nil {
		return Summary{}, err
	}
	var s Summary
	err := guardDecode(func() {
		s = SummaryFromTable(gaschema.GetRootAsRunSummary(buf, 0))
	})
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}

// SummaryFromTable converts a RunSummary table. It panics if the table
// points outside its buffer; use DecodeSummary for untrusted input.
func SummaryFromTable(t *gaschema.RunSummary) Summary {
	s := Summary{
		RunID:          string(t.RunId()),
		Generations:    int(t.Generations()),
		FittestFitness: t.FittestFitness(),
		Error:          string(t.Error()),
	}
	// Vectors grow per element so a corrupt length fails on the first bad
	// read instead of allocating up front
	s.Fittest = []int{}
	for i := 0; i < t.FittestLength(); i++ {
		s.Fittest = append(s.Fittest, int(t.Fittest(i)))
	}
	stat := new(gaschema.GenerationStat)
	for i := 0; i < t.HistoryLength(); i++ {
		if !t.History(stat, i) {
			continue
		}
		s.History = append(s.History, GenerationStats{
			RunID:       s.RunID,
			Generation:  int(stat.Generation()),
			BestFitness: stat.BestFitness(),
			AvgFitness:  stat.AvgFitness(),
		})
	}
	return s
}

// checkRoot verifies that buf can hold a root table offset that points
// inside it.
func checkRoot(buf []byte) error {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%w: %d bytes", ErrMalformedBuffer, len(buf))
	}
	if root := int(flatbuffers.GetUOffsetT(buf)); root+flatbuffers.SizeSOffsetT > len(buf) {
		return fmt.Errorf("%w: root offset %d beyond %d bytes", ErrMalformedBuffer, root, len(buf))
	}
	return nil
}

// guardDecode runs read and turns an out-of-bounds access on a corrupt
// buffer into ErrMalformedBuffer.
func guardDecode(read func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedBuffer, r)
		}
	}()
	read()
	return nil
}

// ConfigFromRequest builds a Config from a RunRequest. Absent fields keep
// their DefaultConfig value: integer sizes are absent at 0, while rates,
// temperature and elitism_count are absent at their schema default of -1 so
// that an explicit 0 is honoured. The result is validated.
func ConfigFromRequest(req *gaschema.RunRequest) (Config, error) {
	config := DefaultConfig()
	if v := req.PopulationSize(); v != 0 {
		config.PopulationSize = int(v)
	}
	if v := req.MutationRate(); v >= 0 {
		config.MutationRate = v
	}
	if v := req.CrossoverRate(); v >= 0 {
		config.CrossoverRate = v
	}
	if v := req.ElitismCount(); v >= 0 {
		config.ElitismCount = int(v)
	}
	if v := req.TournamentSize(); v != 0 {
		config.TournamentSize = int(v)
	}
	if v := req.Temperature(); v >= 0 {
		config.Temperature = v
	}
	if v := req.CoolingRate(); v >= 0 {
		config.CoolingRate = v
	}
	config.AdaptiveMutation = req.AdaptiveMutation()
	config.RandomSeed = req.RandomSeed()

	switch req.CrossoverType() {
	case gaschema.CrossoverKindUnset:
	case gaschema.CrossoverKindSinglePoint:
		config.CrossoverType = CrossoverSinglePoint
	case gaschema.CrossoverKindMultiPoint:
		config.CrossoverType = CrossoverMultiPoint
	case gaschema.CrossoverKindUniform:
		config.CrossoverType = CrossoverUniform
	default:
		return Config{}, fmt.Errorf("%w: unknown crossover kind %s", ErrInvalidConfig, req.CrossoverType())
	}

	switch req.MutationType() {
	case gaschema.MutationKindUnset:
	case gaschema.MutationKindBitFlip:
		config.MutationType = MutationBitFlip
	case gaschema.MutationKindRandomResetting:
		config.MutationType = MutationRandomResetting
	case gaschema.MutationKindSwap:
		config.MutationType = MutationSwap
	case gaschema.MutationKindScramble:
		config.MutationType = MutationScramble
	case gaschema.MutationKindInversion:
		config.MutationType = MutationInversion
	default:
		return Config{}, fmt.Errorf("%w: unknown mutation kind %s", ErrInvalidConfig, req.MutationType())
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// AlgorithmFactory builds the problem named by one RunRequest. Every call
// must return a fresh Algorithm.
type AlgorithmFactory func(req *gaschema.RunRequest) (Algorithm, error)

// EvolveBatch runs every RunRequest of a serialized BatchRequest and returns
// a finished BatchResponse carrying the batch id and one RunSummary per
// request, in request order. A request that cannot be read or configured
// gets a summary holding only its error. A buffer that is not a
// BatchRequest yields a response with the error field set and no results.
//
// Runs execute one after another on the calling goroutine.
func EvolveBatch(buf []byte, newAlgorithm AlgorithmFactory) []byte {
	var batchID uint64
	var requestCount int
	err := checkRoot(buf)
	if err == nil {
		err = guardDecode(func() {
			batch := gaschema.GetRootAsBatchRequest(buf, 0)
			batchID = batch.BatchId()
			requestCount = batch.RequestsLength()
		})
	}
	if err != nil {
		return encodeBatchResponse(0, nil, err.Error())
	}

	summaries := make([]Summary, requestCount)
	for i := range summaries {
		job, err := jobFromBatch(buf, i, newAlgorithm)
		if err != nil {
			summaries[i].Error = err.Error()
			continue
		}
		ctrl := NewController(job.Config, job.Algorithm, job.MaxGenerations)
		_, err = ctrl.Run()
		summaries[i] = ctrl.Summary()
		if err != nil {
			summaries[i].Error = err.Error()
		}
	}
	return encodeBatchResponse(batchID, summaries, "")
}

// jobFromBatch reads request i of the BatchRequest in buf.
func jobFromBatch(buf []byte, i int, newAlgorithm AlgorithmFactory) (BatchJob, error) {
	var job BatchJob
	var err error
	decodeErr := guardDecode(func() {
		req := new(gaschema.RunRequest)
		if !gaschema.GetRootAsBatchRequest(buf, 0).Requests(req, i) {
			err = fmt.Errorf("%w: request unreadable", ErrMalformedBuffer)
			return
		}
		if job.Config, err = ConfigFromRequest(req); err != nil {
			return
		}
		if job.Algorithm, err = newAlgorithm(req); err != nil {
			return
		}
		job.MaxGenerations = int(req.MaxGenerations())
	})
	if decodeErr != nil {
		err = decodeErr
	}
	if err == nil && job.Algorithm == nil {
		err = errors.New("factory returned no algorithm")
	}
	if err != nil {
		return BatchJob{}, fmt.Errorf("request %d: %w", i, err)
	}
	return job, nil
}

func encodeBatchResponse(batchID uint64, summaries []Summary, batchErr string) []byte {
	builder := flatbuffers.NewBuilder(1024)

	var errOffset flatbuffers.UOffsetT
	if batchErr != "" {
		errOffset = builder.CreateString(batchErr)
	}

	resultOffsets := make([]flatbuffers.UOffsetT, len(summaries))
	for i, s := range summaries {
		resultOffsets[i] = BuildSummary(builder, s)
	}
	gaschema.BatchResponseStartResultsVector(builder, len(resultOffsets))
	for i := len(resultOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(resultOffsets[i])
	}
	resultsVec := builder.EndVector(len(resultOffsets))

	gaschema.BatchResponseStart(builder)
	gaschema.BatchResponseAddBatchId(builder, batchID)
	gaschema.BatchResponseAddResults(builder, resultsVec)
	if errOffset != 0 {
		gaschema.BatchResponseAddError(builder, errOffset)
	}
	builder.Finish(gaschema.BatchResponseEnd(builder))
	return builder.FinishedBytes()
}

//    AnalogiaGoTrainer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// Neighbor - one ranked nearest-neighbor hit for a query word
type Neighbor struct {
	Rank       int     `json:"rank"`
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}

// WeightedWord - a word paired with its corpus count
type WeightedWord struct {
	Word  string
	Count int
}

type WWList []WeightedWord

func (w WWList) Len() int {
	return len(w)
}

func (w WWList) Less(i, j int) bool {
	return w[i].Count > w[j].Count
}

func (w WWList) Swap(i, j int) {
	w[i], w[j] = w[j], w[i]
}

// TrainPair - one skip-gram example: predict the context word from the target word
type TrainPair struct {
	Target  int32
	Context int32
}

// TrainInfo - a snapshot of one training run's progress
type TrainInfo struct {
	ID        string  `json:"id"`
	Epoch     int     `json:"epoch"`
	Epochs    int     `json:"epochs"`
	Step      int64   `json:"step"`
	Words     int64   `json:"words"`
	LearnRate float64 `json:"learnrate"`
	WPS       float64 `json:"wps"`
	Exhausted bool    `json:"exhausted"`
}

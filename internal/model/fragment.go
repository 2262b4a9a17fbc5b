package model

// Point is a pixel coordinate in the source image.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RawFragment is one recognized text span as emitted by the OCR engine.
// The lookup pipeline only reads Text; confidence and geometry are passed
// through for clients and the history payload.
type RawFragment struct {
	Text        string   `json:"text"`
	Confidence  float64  `json:"confidence"`
	BoundingBox [4]Point `json:"bbox"`
}

package models

type Bead struct {
	BeadID  string `json:"bead_id"`
	Name    string `json:"name"`
	ImgPath string `json:"imgPath"`
}

type BraceletSlot struct {
	Bead *Bead `json:"bead"`
}

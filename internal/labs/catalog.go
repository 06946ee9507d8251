package labs

import "github.com/yuvasree15/healthpuls/pkg/types"

// labTests is the diagnostic test catalog.
var labTests = []*types.LabTest{
	{ID: 1, Name: "Thyroid Function Test (TFT)", Price: 450, Category: "Hormonal", Description: "Measures T3, T4, and TSH levels to evaluate thyroid health."},
	{ID: 2, Name: "Chest X-Ray", Price: 650, Category: "Imaging", Description: "Diagnostic imaging of the heart and lungs."},
	{ID: 3, Name: "Complete Blood Count (CBC)", Price: 320, Category: "Routine", Description: "Screening for anemia, infection, and various disorders."},
	{ID: 4, Name: "Lipid Profile", Price: 580, Category: "Heart", Description: "Measures cholesterol and triglycerides levels."},
	{ID: 5, Name: "HbA1c (Diabetes)", Price: 490, Category: "Diabetes", Description: "Measures average blood sugar levels over 3 months."},
	{ID: 6, Name: "Liver Function Test (LFT)", Price: 750, Category: "Organ Care", Description: "Assesses liver health and protein levels."},
	{ID: 7, Name: "Vitamin B12 Check", Price: 950, Category: "Deficiency", Description: "Checks for B12 levels vital for nerve health."},
	{ID: 8, Name: "Kidney Function Test (KFT)", Price: 800, Category: "Organ Care", Description: "Evaluates urea and creatinine levels in blood."},
}

func testByID(id int) (*types.LabTest, bool) {
	for _, t := range labTests {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

package commerce

import "github.com/yuvasree15/healthpuls/pkg/types"

// medicines is the pharmacy catalog. IDs are stable; the cart references
// entries by id.
var medicines = []*types.Medicine{
	{
		ID: 1, Name: "Paracetamol 500mg", Price: 50, Category: "Pain Relief", RequiresPrescription: false,
		Description: "Effective for fever and mild to moderate pain.",
		Usage:       "Take 1 tablet every 4-6 hours as needed. Do not exceed 4 tablets in 24 hours.",
		SideEffects: "Mild nausea, stomach pain, or skin rash in rare cases.",
		Storage:     "Store in a cool, dry place below 25°C. Keep away from direct sunlight.",
	},
	{
		ID: 2, Name: "Amoxicillin 250mg", Price: 120, Category: "Antibiotics", RequiresPrescription: true,
		Description: "Broad-spectrum antibiotic for bacterial infections.",
		Usage:       "Complete the full course as directed by your physician. Usually 3 times daily.",
		SideEffects: "Diarrhea, yeast infection, or mild allergic reactions.",
		Storage:     "Keep in original container. Store at room temperature.",
	},
	{
		ID: 3, Name: "Ibuprofen 400mg", Price: 85, Category: "Pain Relief", RequiresPrescription: false,
		Description: "Anti-inflammatory medicine for joint and muscle pain.",
		Usage:       "Take with food or milk to prevent stomach upset. 1 tablet every 6-8 hours.",
		SideEffects: "Heartburn, indigestion, or dizziness.",
		Storage:     "Keep tightly closed in a dry area.",
	},
	{
		ID: 4, Name: "Vitamin D3 60K", Price: 210, Category: "Supplements", RequiresPrescription: false,
		Description: "Supports bone health and immunity.",
		Usage:       "Take 1 capsule weekly for 8 weeks or as prescribed.",
		SideEffects: "Excessive calcium levels if taken in very high doses.",
		Storage:     "Protect from light and moisture.",
	},
	{
		ID: 5, Name: "Omeprazole 20mg", Price: 145, Category: "Stomach Care", RequiresPrescription: false,
		Description: "Reduces stomach acid for heartburn relief.",
		Usage:       "Take at least 1 hour before a meal, usually in the morning.",
		SideEffects: "Headache, stomach pain, or gas.",
		Storage:     "Keep in a cool place.",
	},
	{
		ID: 6, Name: "Metformin 500mg", Price: 90, Category: "Diabetes", RequiresPrescription: true,
		Description: "Controls blood sugar levels in Type 2 diabetes.",
		Usage:       "Take with meals to reduce gastrointestinal side effects.",
		SideEffects: "Metallic taste, diarrhea, or appetite loss.",
		Storage:     "Store away from children.",
	},
}

// Catalog returns the pharmacy catalog.
func Catalog() []*types.Medicine {
	out := make([]*types.Medicine, len(medicines))
	copy(out, medicines)
	return out
}

// MedicineByID looks up a catalog entry.
func MedicineByID(id int) (*types.Medicine, bool) {
	for _, m := range medicines {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

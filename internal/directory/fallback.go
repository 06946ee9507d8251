package directory

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/yuvasree15/healthpuls/pkg/types"
)

var firstNames = []string{
	"Gokul", "Dinesh", "Pooja", "Divakar", "Anjali", "Arjun", "Siddharth", "Ishani", "Rohan", "Vikram",
	"Priyanka", "Aditya", "Meera", "Kabir", "Sanya", "Varun", "Kavita", "Rishi", "Neha", "Aman",
	"Tara", "Zoya", "Karthik", "Suresh", "Rahul", "Sneha", "Abhishek", "Kavitha", "Deepa", "Vijay",
	"Laxmi", "Saritha", "Ramesh", "Anitha", "Sanjay", "Elena", "David", "Sophia", "Kenji",
}

var lastNames = []string{
	"Divakar", "Kumar", "Nair", "Reddy", "Sharma", "Pillai", "Menon", "Iyer", "Gupta", "Singh",
	"Verma", "Patil", "Deshmukh", "Choudhary", "Rao", "Shetty", "Venkatesh", "Bose", "Kapoor", "Malhotra",
	"Dutta", "Patel", "Joshi", "Chopra", "Das", "Khan", "Muller", "Lee", "Tanaka", "Rodriguez",
}

type category struct {
	field    string
	focus    []string
	adj      []string
	symptoms []string
}

var categories = []category{
	{
		field:    "Cardiology",
		focus:    []string{"Heart Valve", "Preventive Care", "Arterial Health", "Cardiac Rhythm"},
		adj:      []string{"Senior", "Renowned", "Diligent", "Leading"},
		symptoms: []string{"chest discomfort", "breathing difficulty", "dizziness", "fatigue", "weakness"},
	},
	{
		field:    "Neurology",
		focus:    []string{"Brain Trauma", "Spinal Health", "Nerve Disorders", "Migraine Care"},
		adj:      []string{"Expert", "Advanced", "Specialized", "Clinical"},
		symptoms: []string{"headache", "dizziness", "weakness", "sleep problems", "fatigue"},
	},
	{
		field:    "Pediatrics",
		focus:    []string{"Neonatal Care", "Infant Growth", "Childhood Immunity", "Adolescent Health"},
		adj:      []string{"Compassionate", "Gentle", "Dedicated", "Caring"},
		symptoms: []string{"Fever", "cold", "cough", "sore throat", "vomiting", "diarrhea"},
	},
	{
		field:    "Orthopedics",
		focus:    []string{"Joint Replacement", "Sports Injuries", "Bone Density", "Fracture Recovery"},
		adj:      []string{"Skilled", "Experienced", "Trusted", "Precision"},
		symptoms: []string{"body pain", "back pain", "joint pain", "muscle pain", "weakness"},
	},
	{
		field:    "Dermatology",
		focus:    []string{"Aesthetic Medicine", "Skin Allergy", "Laser Therapy", "Psoriasis Care"},
		adj:      []string{"Holistic", "Precision", "Aesthetic", "Clinical"},
		symptoms: []string{"skin rashes", "itching"},
	},
	{
		field:    "Oncology",
		focus:    []string{"Targeted Therapy", "Tumor Genetics", "Early Detection", "Palliative Care"},
		adj:      []string{"Empathetic", "Vigilant", "Top-tier", "Senior"},
		symptoms: []string{"weakness", "fatigue", "loss of appetite"},
	},
	{
		field:    "Gastroenterology",
		focus:    []string{"Digestive Wellness", "Liver Function", "Endoscopy", "Gut Microbiome"},
		adj:      []string{"Thorough", "Diagnostic", "Expert", "Skilled"},
		symptoms: []string{"stomach pain", "nausea", "vomiting", "diarrhea", "constipation", "acidity", "gas", "loss of appetite"},
	},
	{
		field:    "Psychiatry",
		focus:    []string{"Cognitive Therapy", "Stress Management", "Behavioral Health", "Sleep Science"},
		adj:      []string{"Supportive", "Understanding", "Qualified", "Patient"},
		symptoms: []string{"sleep problems", "fatigue", "weakness", "loss of appetite"},
	},
	{
		field:    "General Physician",
		focus:    []string{"Family Medicine", "Primary Health", "Diagnostic Care", "Wellness"},
		adj:      []string{"Attentive", "Primary", "Community", "Expert"},
		symptoms: []string{"Fever", "cold", "cough", "sore throat", "headache", "body pain", "sneezing", "nose block", "weakness", "fatigue", "acidity", "gas"},
	},
	{
		field:    "ENT Specialist",
		focus:    []string{"Nasal Surgery", "Ear Microsurgery", "Voice Therapy", "Sinus Care"},
		adj:      []string{"Skilled", "Specialized", "Precise", "Senior"},
		symptoms: []string{"ear pain", "sore throat", "nose block", "sneezing", "eye irritation"},
	},
}

// generateFallback builds the local stand-in dataset served when the remote
// directory is unreachable. The shape matches the remote payload exactly.
func generateFallback() []*types.DoctorListing {
	listings := make([]*types.DoctorListing, 0, 80)

	for i := 0; i < 80; i++ {
		cat := categories[i%len(categories)]
		fName := firstNames[(i*13)%len(firstNames)]
		lName := lastNames[(i*17)%len(lastNames)]

		focusArea := cat.focus[i%len(cat.focus)]
		adjective := cat.adj[i%len(cat.adj)]

		keywords := make([]string, 0, len(cat.symptoms)+3)
		keywords = append(keywords, cat.symptoms...)
		keywords = append(keywords, strings.ToLower(cat.field), strings.ToLower(fName), strings.ToLower(lName))

		location := "Sunrise Health Hub"
		if i%2 == 0 {
			location = "City Medical Plaza"
		}

		listings = append(listings, &types.DoctorListing{
			ID:            3000 + i,
			Name:          fmt.Sprintf("Dr. %s %s", fName, lName),
			Specialty:     cat.field,
			Bio:           fmt.Sprintf("%s %s consultant dedicated to %s and evidence-based clinical practices.", adjective, cat.field, strings.ToLower(focusArea)),
			Keywords:      keywords,
			Experience:    fmt.Sprintf("%d yrs exp.", 5+(i%25)),
			Rating:        fmt.Sprintf("%.1f", 4.1+float64(i%9)/10),
			Price:         fmt.Sprintf("₹%d", 450+rand.Intn(1051)),
			BookingNumber: fmt.Sprintf("9%09d", 100000000+rand.Intn(900000000)),
			Location:      location,
			Available:     true,
			Symptoms:      cat.symptoms,
		})
	}

	return listings
}

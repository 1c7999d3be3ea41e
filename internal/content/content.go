// Package content holds the static texts shown next to a diagnosis and on the
// informational pages.
package content

import "tumorvision/internal/domain/entity"

const (
	// AppName is the product name shown to users.
	AppName = "TumorVision"

	Home = "TumorVision\n\nJust upload an image and get the tumor detected.\n\n" +
		"Send /detect and then a brain MRI scan (JPEG or PNG). Ask the chatbot about " +
		"glioma, meningioma, pituitary tumors or general help at any time."

	About = "Welcome to TumorVision: your brain tumor detection solution\n\n" +
		"TumorVision lets you upload an MRI image and quickly see whether it shows a glioma, " +
		"meningioma or pituitary tumor, or no tumor at all. " +
		"The result is produced by a pre-trained image classifier and is for educational use only; " +
		"it is not a medical diagnosis.\n\n" +
		"Step 01: Upload image\n" +
		"Step 02: Cross check (the image is verified to look like a brain MRI)\n" +
		"Step 03: View detection"

	Help = "How to use the bot:\n\n" +
		"1. Send /detect\n" +
		"2. Upload a brain MRI scan as a photo or as a JPEG/PNG file\n" +
		"3. Read the predicted result and the description\n\n" +
		"Any other message goes to the chatbot.\n\n" +
		"Commands:\n/start - home\n/about - about TumorVision\n/detect - upload a scan\n" +
		"/reset - clear the chat history\n/cancel - cancel the current operation"

	// NotMRI is shown when the plausibility gate rejects an upload.
	NotMRI = "This doesn't appear to be a valid brain MRI image. Please upload a proper brain MRI scan."

	// Failure is shown for unreadable images and inference errors.
	Failure = "Sorry, the image could not be analyzed. Please try again with a different JPEG or PNG file."
)

var descriptions = map[entity.Label]string{
	entity.LabelGlioma: `Gliomas are tumors that originate in the glial cells of the brain or spinal cord. They range from benign to malignant and are categorized by the glial cell type they affect, such as astrocytes, oligodendrocytes or ependymal cells. Glioblastoma multiforme (GBM) is the most aggressive and most common malignant glioma.

Symptoms
- Headaches, often worse in the morning
- Seizures
- Nausea or vomiting
- Vision problems
- Memory loss, changes in personality or behavior
- Difficulty speaking or understanding language
- Weakness or numbness in limbs, balance and coordination problems

Treatment
1. Surgery: first-line for many gliomas, removing as much of the tumor as possible.
2. Radiation therapy: targets remaining tumor cells, especially for higher-grade gliomas.
3. Chemotherapy: commonly temozolomide, with or after radiation.
4. Targeted therapy: drugs aimed at specific mutations, e.g. bevacizumab for glioblastoma.
5. Tumor treating fields: electrical fields that slow tumor growth.
6. Supportive care: anti-seizure medication, steroids for swelling, physical therapy.

Prognosis
Depends on the grade (I to IV), age and overall health. Low-grade gliomas have better outcomes; glioblastoma is aggressive and hard to treat.

Please speak with a neurosurgeon or oncologist for a tailored plan.`,

	entity.LabelMeningioma: `Meningiomas are typically slow-growing tumors that arise from the meninges, the protective membranes around the brain and spinal cord. Most are benign, they are more common in women and tend to occur in older people.

Symptoms
- Persistent headaches
- Seizures
- Blurred or double vision
- Hearing loss or ringing in the ears
- Memory loss or confusion, loss of smell
- Muscle weakness in arms or legs
- Personality changes, speech difficulties, balance problems
Some people have no symptoms at all, especially with small tumors.

Treatment
1. Watchful waiting: regular MRIs for small tumors without symptoms.
2. Surgery: primary treatment when the tumor is accessible; fully removed benign tumors rarely return.
3. Radiation therapy: when the tumor cannot be fully removed, sits in a sensitive area or recurs; includes stereotactic radiosurgery.
4. Medication: steroids, anti-seizure drugs or hormone therapy to control symptoms.
5. Chemotherapy: rarely used, considered for atypical or malignant meningiomas.

Grading
- Grade I (benign): about 80%, slow-growing, excellent prognosis.
- Grade II (atypical): faster growing, more likely to return.
- Grade III (anaplastic): rare and aggressive.

Prognosis
Excellent for benign meningiomas that are completely removed. Regular follow-up is important to detect recurrence.`,

	entity.LabelNoTumor: `Congratulations on your clear scan! The analysis did not detect any signs of a glioma, meningioma, pituitary tumor or other detectable mass.

If you had symptoms, they may have other causes such as migraines, stress, sinus problems or neurological issues, so follow up with a doctor if they persist.

What to consider
1. Keep up with routine checkups: regular evaluations catch issues early.
2. Monitor symptoms: report new headaches, seizures or vision problems to a neurologist.
3. Brain-healthy lifestyle: balanced diet, regular exercise, 7 to 9 hours of sleep, mental activity, no smoking and little alcohol.
4. Keep a record: store your MRI reports in case you need them later.

A clear scan is a huge relief and a good reminder to keep taking care of your body and mind. Stay healthy!`,

	entity.LabelPituitary: `Pituitary tumors develop in the pituitary gland, the pea-sized gland at the base of the brain that controls many hormones. Most are benign and slow-growing but can still disrupt vital body functions. They are classified as microadenomas (<10 mm) or macroadenomas (>=10 mm).

Symptoms from pressure on nearby structures
- Headaches
- Vision problems, especially loss of peripheral vision
- Nausea or dizziness

Symptoms from hormonal imbalance
- Prolactin-secreting: irregular periods, erectile dysfunction, breast milk discharge
- Growth hormone-secreting: acromegaly, joint pain, thick skin
- ACTH-secreting: Cushing's disease with weight gain, high blood pressure, fatigue
- TSH-secreting (rare): weight loss, rapid heartbeat, sweating
- Non-functioning tumors are often found late, when they cause pressure symptoms

Treatment
1. Medication: first-line for many hormone-producing tumors; prolactinomas respond to cabergoline or bromocriptine.
2. Surgery: usually transsphenoidal, through the nose, for large tumors or vision problems.
3. Radiation therapy: when surgery is not possible or not fully effective.
4. Hormone replacement: when the tumor or surgery affects hormone production.

Prognosis
Generally good, especially for small tumors and prolactinomas. Long-term monitoring and hormone checks may be needed.`,
}

// Description returns the educational text for a label.
func Description(l entity.Label) (string, error) {
	d, ok := descriptions[l]
	if !ok {
		return "", entity.ErrUnknownLabel
	}
	return d, nil
}

package services

// FAQ is one helpdesk knowledge-base entry
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// faqEntries is the helpdesk knowledge base. Matching is keyword based, so
// questions are phrased with the terms students actually type.
var faqEntries = []FAQ{
	{
		Question: "What is the difference between Aadhaar linked and DBT enabled account?",
		Answer:   "An Aadhaar-linked account simply has your Aadhaar number attached for KYC. A DBT-enabled account is additionally seeded in the NPCI mapper, which is what the government uses to route scholarship and subsidy payments. Only a DBT-enabled account can receive benefit transfers.",
	},
	{
		Question: "How do I make my bank account DBT enabled?",
		Answer:   "Visit your bank branch and submit a consent form asking to seed your account with the NPCI mapper for DBT. Carry your Aadhaar card and passbook. Seeding usually completes within 2-3 working days.",
	},
	{
		Question: "What is the NPCI mapper?",
		Answer:   "The NPCI mapper is a central registry that maps your Aadhaar number to exactly one bank account. Government benefit payments are routed to whichever account is currently seeded in the mapper.",
	},
	{
		Question: "Why was my scholarship payment not credited?",
		Answer:   "The most common causes are: your account is Aadhaar-linked but not DBT enabled, the mapper points at a different or closed account, or your bank details failed verification. Check your verification status on the portal and confirm seeding with your bank.",
	},
	{
		Question: "What does the pending institute status mean?",
		Answer:   "Your application is waiting for first-stage review by your institute. Once the institute verifies your details it is forwarded to the admin for final approval.",
	},
	{
		Question: "What does the pending admin status mean?",
		Answer:   "Your institute has verified your details and forwarded the application. The portal admin performs the final verification before your account is marked DBT verified.",
	},
	{
		Question: "My application was rejected, what should I do?",
		Answer:   "Open your dashboard and use the re-apply option on the rejected application. Double-check your account number and IFSC code before submitting again.",
	},
	{
		Question: "How do I find my IFSC code?",
		Answer:   "The IFSC code is printed on your passbook and cheque book. It is an 11-character code like SBIN0001234: four letters for the bank, a zero, then six characters for the branch.",
	},
	{
		Question: "Can I change my seeded bank account?",
		Answer:   "Yes. Submit a seeding request at the new bank; the NPCI mapper always keeps your latest seeded account. After the bank confirms, submit a fresh verification on the portal if your application was already decided.",
	},
	{
		Question: "How do I become a DBT Sahayak volunteer?",
		Answer:   "Open the volunteer section of the portal and fill in the internship application. Choose a duration, serve the committed period spreading DBT awareness, and you will receive a certificate once the internship is complete.",
	},
}

// FAQList returns the helpdesk knowledge base
func FAQList() []FAQ {
	return faqEntries
}

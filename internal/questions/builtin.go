package questions

// Built-in banks used by the complete interview suite and as a fallback
// when no CSV bank file is available.

// GeneralDomain holds the default technical/behavioral question set.
var GeneralDomain = []string{
	"How do you stay updated with the latest trends in your field?",
	"What is your approach to problem-solving?",
	"How do you handle tight deadlines when working on complex tasks?",
	"Can you describe a time when you had to learn a new tool or technology quickly?",
	"How do you ensure the quality of your work?",
	"What's your preferred way to collaborate with a team on technical tasks?",
	"Describe a situation where you had to troubleshoot a difficult issue.",
	"What are your thoughts on automation in the industry?",
	"How do you manage multiple priorities in a project?",
	"Explain a technical concept to a non-technical person.",
}

// HR holds the default HR-round question set.
var HR = []string{
	"Tell me about yourself.",
	"Why do you want to work here?",
	"What are your strengths and weaknesses?",
	"Where do you see yourself in 5 years?",
	"How do you handle conflict at work?",
	"Describe a challenging situation you faced and how you handled it.",
	"What motivates you?",
	"How do you handle criticism?",
	"What does leadership mean to you?",
	"What is your expected salary?",
}

// ResumePrompts holds the short resume-probing set used by the complete
// suite's resume round.
var ResumePrompts = []string{
	"Is your resume general or domain specific?",
	"Highlight one project and explain your role in detail.",
	"What skills from your resume are you most confident in?",
	"Tell me about a certification or course you've done recently.",
	"How has your academic background prepared you for this role?",
}

package kb

// defaultEntries is the compiled-in production catalog covering Thoughtful
// AI's healthcare automation agents. A YAML catalog file (see Load) replaces
// it entirely when configured.
var defaultEntries = []TopicEntry{
	{
		Name:     "EVA",
		Question: "What does the eligibility verification agent (EVA) do?",
		Answer: "EVA automates the process of verifying a patient's eligibility and benefits " +
			"information in real-time, eliminating manual data entry errors and reducing claim rejections.",
		Variations: []string{
			"What does EVA do?",
			"What is EVA?",
			"Tell me about EVA",
			"Explain EVA",
			"What is the eligibility verification agent?",
			"How does EVA work?",
		},
		Facets: []string{
			"verify eligibility",
			"check eligibility",
			"patient eligibility",
			"insurance eligibility",
			"eligibility verification",
			"verify benefits",
			"check benefits",
			"benefits verification",
		},
	},
	{
		Name:     "CAM",
		Question: "What does the claims processing agent (CAM) do?",
		Answer: "CAM streamlines the submission and management of claims, improving accuracy, " +
			"reducing manual intervention, and accelerating reimbursements.",
		Variations: []string{
			"What is CAM?",
			"Tell me about CAM",
			"Explain CAM",
			"What is the claims processing agent?",
			"How does CAM work?",
			"What does CAM do?",
		},
		Facets: []string{
			"handle claims",
			"process claims",
			"manage claims",
			"submit claims",
			"claims processing",
			"claims management",
			"claims submission",
		},
	},
	{
		Name:     "PHIL",
		Question: "How does the payment posting agent (PHIL) work?",
		Answer: "PHIL automates the posting of payments to patient accounts, ensuring fast, " +
			"accurate reconciliation of payments and reducing administrative burden.",
		Variations: []string{
			"What is PHIL?",
			"Tell me about PHIL",
			"Explain PHIL",
			"What is the payment posting agent?",
			"What does PHIL do?",
			"How does PHIL work?",
		},
		Facets: []string{
			"post payments",
			"posting payments",
			"payment posting",
			"process payments",
			"reconcile payments",
			"payment reconciliation",
		},
	},
	{
		Name:     "agents-overview",
		Question: "Tell me about Thoughtful AI's Agents.",
		Answer: "Thoughtful AI provides a suite of AI-powered automation agents designed to " +
			"streamline healthcare processes. These include Eligibility Verification (EVA), " +
			"Claims Processing (CAM), and Payment Posting (PHIL), among others.",
		Variations: []string{
			"What are Thoughtful AI agents?",
			"What agents do you have?",
			"Tell me about Thoughtful AI",
			"What is Thoughtful AI?",
			"What products do you offer?",
			"What services does Thoughtful AI provide?",
			"List your agents",
			"What AI agents are available?",
		},
		Facets: []string{
			"automation agents",
			"healthcare automation",
			"suite of agents",
		},
	},
	{
		Name:     "benefits",
		Question: "What are the benefits of using Thoughtful AI's agents?",
		Answer: "Using Thoughtful AI's Agents can significantly reduce administrative costs, " +
			"improve operational efficiency, and reduce errors in critical processes like " +
			"claims management and payment posting.",
		Variations: []string{
			"What are the benefits?",
			"Why should I use Thoughtful AI?",
			"What are the advantages?",
			"How can Thoughtful AI help me?",
			"What value do your agents provide?",
			"Tell me about the benefits",
			"Why choose Thoughtful AI?",
		},
		Facets: []string{
			"reduce costs",
			"administrative costs",
			"operational efficiency",
			"reduce errors",
		},
	},
}

// DefaultCatalog returns the compiled-in catalog.
// It panics only if the built-in data is invalid, which is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries)
	if err != nil {
		panic("kb: built-in catalog is invalid: " + err.Error())
	}
	return c
}

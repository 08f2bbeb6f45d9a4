package synonyms

// skillEntry is one node in the built-in skill ontology consumed by this
// package's Table/Canonicalize/FindMentioned to canonicalize tokens mined
// from résumés and job descriptions. Unlike a general-purpose taxonomy
// service, this ontology carries only what the screening evaluators and
// internal/extractor actually consume: a canonical display name, a coarse
// category used to split "technical" from "soft" skills, and the aliases a
// candidate or recruiter might type instead of the canonical name.
type skillEntry struct {
	canonical string
	category  string
	aliases   []string
}

const (
	CategoryLanguage      = "language"
	CategoryFrontend      = "frontend"
	CategoryBackend       = "backend"
	CategoryMobile        = "mobile"
	CategoryDatabase      = "database"
	CategoryCloud         = "cloud"
	CategoryDevOps        = "devops"
	CategoryAPI           = "api"
	CategoryMessaging     = "messaging"
	CategoryMLFramework   = "ml_framework"
	CategoryMLConcept     = "ml_concept"
	CategoryDataTools     = "data_tools"
	CategoryLeadership    = "leadership"
	CategoryCollaboration = "collaboration"
	CategoryProblemSolve  = "problem_solving"
	CategoryProjectMgmt   = "project_management"
	CategoryCommunication = "communication"
)

// softCategories are the categories classified as soft skills; every other
// category in the ontology is treated as technical.
var softCategories = map[string]bool{
	CategoryLeadership:    true,
	CategoryCollaboration: true,
	CategoryProblemSolve:  true,
	CategoryProjectMgmt:   true,
	CategoryCommunication: true,
}

var builtinSkills = []skillEntry{
	{canonical: "Go", category: CategoryLanguage, aliases: []string{"golang", "go lang", "go programming"}},
	{canonical: "Python", category: CategoryLanguage, aliases: []string{"py", "python3", "python 3", "python2", "python 2"}},
	{canonical: "JavaScript", category: CategoryLanguage, aliases: []string{"js", "ecmascript", "es6", "vanilla js", "vanilla javascript"}},
	{canonical: "TypeScript", category: CategoryLanguage, aliases: []string{"ts", "typescript lang"}},
	{canonical: "Java", category: CategoryLanguage, aliases: []string{"java se", "java ee", "java 8", "java 11", "java 17", "java 21"}},
	{canonical: "Rust", category: CategoryLanguage, aliases: []string{"rust lang", "rust programming"}},
	{canonical: "C#", category: CategoryLanguage, aliases: []string{"csharp", "c sharp", ".net c#", "dotnet c#"}},
	{canonical: "C++", category: CategoryLanguage, aliases: []string{"cpp", "c plus plus", "cplusplus"}},
	{canonical: "C", category: CategoryLanguage, aliases: []string{"c language", "c programming", "ansi c"}},
	{canonical: "Ruby", category: CategoryLanguage, aliases: []string{"ruby lang", "ruby programming"}},
	{canonical: "PHP", category: CategoryLanguage, aliases: []string{"php7", "php8", "php 7", "php 8"}},
	{canonical: "Swift", category: CategoryLanguage, aliases: []string{"swift lang", "swift programming", "apple swift"}},
	{canonical: "Kotlin", category: CategoryLanguage, aliases: []string{"kotlin lang", "kotlin programming"}},
	{canonical: "Scala", category: CategoryLanguage, aliases: []string{"scala lang"}},
	{canonical: "R", category: CategoryLanguage, aliases: []string{"r language", "r programming", "r stats"}},
	{canonical: "SQL", category: CategoryLanguage, aliases: []string{"structured query language", "t-sql", "tsql", "pl/sql", "plsql"}},
	{canonical: "Bash", category: CategoryLanguage, aliases: []string{"shell", "shell scripting", "bash scripting", "sh", "zsh", "unix shell"}},
	{canonical: "HTML", category: CategoryFrontend, aliases: []string{"html5", "html 5", "hypertext markup language"}},
	{canonical: "CSS", category: CategoryFrontend, aliases: []string{"css3", "css 3", "cascading style sheets"}},
	{canonical: "GraphQL", category: CategoryAPI, aliases: []string{"graph ql", "gql"}},

	{canonical: "React", category: CategoryFrontend, aliases: []string{"react.js", "reactjs", "react js"}},
	{canonical: "Angular", category: CategoryFrontend, aliases: []string{"angular.js", "angularjs", "angular js"}},
	{canonical: "Vue.js", category: CategoryFrontend, aliases: []string{"vue.js", "vuejs", "vue js", "nuxt", "nuxt.js"}},
	{canonical: "Next.js", category: CategoryFrontend, aliases: []string{"nextjs", "next js"}},
	{canonical: "Svelte", category: CategoryFrontend, aliases: []string{"svelte.js", "sveltejs", "sveltekit"}},
	{canonical: "Tailwind CSS", category: CategoryFrontend, aliases: []string{"tailwindcss", "tailwind css"}},
	{canonical: "Sass", category: CategoryFrontend, aliases: []string{"scss", "sass/scss"}},

	{canonical: "Django", category: CategoryBackend, aliases: []string{"django framework", "django rest framework", "drf"}},
	{canonical: "Flask", category: CategoryBackend, aliases: []string{"flask framework", "flask python"}},
	{canonical: "FastAPI", category: CategoryBackend, aliases: []string{"fast api", "fastapi framework"}},
	{canonical: "Spring Boot", category: CategoryBackend, aliases: []string{"spring boot", "springboot", "spring framework", "spring"}},
	{canonical: "Node.js", category: CategoryBackend, aliases: []string{"node.js", "nodejs", "node js", "node"}},
	{canonical: "Express.js", category: CategoryBackend, aliases: []string{"express.js", "expressjs", "express js", "express framework"}},
	{canonical: "NestJS", category: CategoryBackend, aliases: []string{"nest.js", "nestjs", "nest js"}},
	{canonical: "Ruby on Rails", category: CategoryBackend, aliases: []string{"ruby on rails", "rails", "ror"}},
	{canonical: "Laravel", category: CategoryBackend, aliases: []string{"laravel framework", "laravel php"}},
	{canonical: "Gin", category: CategoryBackend, aliases: []string{"gin framework", "gin-gonic"}},
	{canonical: "Echo", category: CategoryBackend, aliases: []string{"echo framework", "echo go"}},
	{canonical: "Fiber", category: CategoryBackend, aliases: []string{"fiber framework", "gofiber"}},
	{canonical: "Actix", category: CategoryBackend, aliases: []string{"actix-web", "actix web"}},
	{canonical: ".NET", category: CategoryBackend, aliases: []string{".net", "dotnet", "asp.net", "asp.net core", "aspnet", ".net core", "dotnet core"}},

	{canonical: "iOS Development", category: CategoryMobile, aliases: []string{"ios development", "ios dev", "iphone development"}},
	{canonical: "Android Development", category: CategoryMobile, aliases: []string{"android development", "android dev"}},
	{canonical: "Flutter", category: CategoryMobile, aliases: []string{"flutter sdk", "flutter framework"}},
	{canonical: "React Native", category: CategoryMobile, aliases: []string{"react native", "reactnative", "rn"}},

	{canonical: "PostgreSQL", category: CategoryDatabase, aliases: []string{"postgres", "psql", "pg", "postgresql database"}},
	{canonical: "MySQL", category: CategoryDatabase, aliases: []string{"mysql database", "mysql server"}},
	{canonical: "MongoDB", category: CategoryDatabase, aliases: []string{"mongo", "mongo db", "mongodb database"}},
	{canonical: "Redis", category: CategoryDatabase, aliases: []string{"redis cache", "redis db"}},
	{canonical: "Elasticsearch", category: CategoryDatabase, aliases: []string{"elastic search", "elastic", "opensearch"}},
	{canonical: "Cassandra", category: CategoryDatabase, aliases: []string{"apache cassandra", "cassandra db"}},
	{canonical: "DynamoDB", category: CategoryDatabase, aliases: []string{"dynamo db", "aws dynamodb", "amazon dynamodb"}},
	{canonical: "SQLite", category: CategoryDatabase, aliases: []string{"sqlite3", "sqlite database"}},
	{canonical: "Neo4j", category: CategoryDatabase, aliases: []string{"neo4j database", "graph database"}},
	{canonical: "Pinecone", category: CategoryDatabase, aliases: []string{"pinecone db", "pinecone vector"}},
	{canonical: "Weaviate", category: CategoryDatabase, aliases: []string{"weaviate db"}},
	{canonical: "Qdrant", category: CategoryDatabase, aliases: []string{"qdrant db"}},

	{canonical: "AWS", category: CategoryCloud, aliases: []string{"amazon web services", "amazon aws", "aws cloud"}},
	{canonical: "Azure", category: CategoryCloud, aliases: []string{"microsoft azure", "azure cloud", "ms azure"}},
	{canonical: "GCP", category: CategoryCloud, aliases: []string{"google cloud", "google cloud platform", "google cloud services"}},

	{canonical: "Docker", category: CategoryDevOps, aliases: []string{"docker container", "docker compose", "dockerfile"}},
	{canonical: "Kubernetes", category: CategoryDevOps, aliases: []string{"k8s", "kube", "kubernetes orchestration"}},
	{canonical: "Terraform", category: CategoryDevOps, aliases: []string{"terraform iac", "hashicorp terraform"}},
	{canonical: "Ansible", category: CategoryDevOps, aliases: []string{"ansible automation", "red hat ansible"}},
	{canonical: "Jenkins", category: CategoryDevOps, aliases: []string{"jenkins ci", "jenkins pipeline"}},
	{canonical: "GitHub Actions", category: CategoryDevOps, aliases: []string{"github actions", "gh actions", "github ci"}},
	{canonical: "GitLab CI/CD", category: CategoryDevOps, aliases: []string{"gitlab ci", "gitlab ci/cd", "gitlab pipeline"}},
	{canonical: "Helm", category: CategoryDevOps, aliases: []string{"helm chart", "helm charts"}},
	{canonical: "Prometheus", category: CategoryDevOps, aliases: []string{"prometheus monitoring"}},
	{canonical: "Grafana", category: CategoryDevOps, aliases: []string{"grafana dashboard"}},
	{canonical: "Git", category: CategoryDevOps, aliases: []string{"git version control", "git scm"}},
	{canonical: "CI/CD", category: CategoryDevOps, aliases: []string{"ci/cd", "continuous integration", "continuous delivery", "continuous deployment", "ci cd"}},

	{canonical: "REST", category: CategoryAPI, aliases: []string{"restful", "rest api", "restful api", "rest apis", "restful apis"}},
	{canonical: "gRPC", category: CategoryAPI, aliases: []string{"grpc", "google rpc", "protocol buffers", "protobuf"}},
	{canonical: "Apache Kafka", category: CategoryMessaging, aliases: []string{"kafka", "apache kafka", "kafka streaming"}},
	{canonical: "RabbitMQ", category: CategoryMessaging, aliases: []string{"rabbit mq", "amqp"}},

	{canonical: "TensorFlow", category: CategoryMLFramework, aliases: []string{"tensor flow", "tf", "tensorflow 2", "tensorflow2"}},
	{canonical: "PyTorch", category: CategoryMLFramework, aliases: []string{"py torch", "torch", "pytorch framework"}},
	{canonical: "Keras", category: CategoryMLFramework, aliases: []string{"keras api"}},
	{canonical: "scikit-learn", category: CategoryMLFramework, aliases: []string{"sklearn", "scikit learn", "scikitlearn"}},
	{canonical: "Pandas", category: CategoryDataTools, aliases: []string{"pandas library", "pandas dataframe"}},
	{canonical: "NumPy", category: CategoryDataTools, aliases: []string{"numpy library", "np"}},
	{canonical: "Apache Spark", category: CategoryDataTools, aliases: []string{"apache spark", "pyspark", "spark streaming"}},
	{canonical: "Machine Learning", category: CategoryMLConcept, aliases: []string{"ml", "machine learning", "supervised learning", "unsupervised learning"}},
	{canonical: "Deep Learning", category: CategoryMLConcept, aliases: []string{"dl", "deep learning", "neural networks", "neural network"}},
	{canonical: "NLP", category: CategoryMLConcept, aliases: []string{"natural language processing", "text mining", "text analytics"}},
	{canonical: "LLM", category: CategoryMLConcept, aliases: []string{"large language model", "large language models", "llms", "gpt", "chatgpt"}},
	{canonical: "RAG", category: CategoryMLConcept, aliases: []string{"retrieval augmented generation", "retrieval-augmented generation"}},

	{canonical: "Leadership", category: CategoryLeadership, aliases: []string{"team leadership", "technical leadership", "tech lead", "engineering leadership"}},
	{canonical: "Communication", category: CategoryCommunication, aliases: []string{"verbal communication", "written communication", "interpersonal communication"}},
	{canonical: "Teamwork", category: CategoryCollaboration, aliases: []string{"team player", "collaboration", "collaborative", "cross-functional collaboration"}},
	{canonical: "Problem Solving", category: CategoryProblemSolve, aliases: []string{"problem solving", "analytical thinking", "critical thinking", "analytical skills"}},
	{canonical: "Project Management", category: CategoryProjectMgmt, aliases: []string{"project management", "program management", "pmp", "agile project management"}},
	{canonical: "Agile", category: CategoryProjectMgmt, aliases: []string{"agile methodology", "agile development", "scrum", "kanban", "sprint"}},
	{canonical: "Mentoring", category: CategoryLeadership, aliases: []string{"mentorship", "coaching", "staff development"}},
	{canonical: "Stakeholder Management", category: CategoryProjectMgmt, aliases: []string{"stakeholder management", "stakeholder communication", "executive communication"}},
}

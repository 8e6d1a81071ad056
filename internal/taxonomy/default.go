package taxonomy

// Default returns the built-in taxonomy, used when no external artifact is
// configured. Category order here determines improvement-plan ordering.
func Default() *Taxonomy {
	t, err := New([]Category{
		{Name: "programming", Skills: []string{
			"python", "java", "c++", "c#", "javascript", "typescript", "go", "rust", "scala", "r",
		}},
		{Name: "data_science", Skills: []string{
			"machine learning", "deep learning", "nlp", "computer vision", "data analysis",
			"statistics", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		}},
		{Name: "big_data", Skills: []string{
			"spark", "kafka", "hadoop", "pyspark", "hive", "storm", "flink",
			"elasticsearch", "mongodb", "cassandra",
		}},
		{Name: "databases", Skills: []string{
			"sql", "mysql", "postgresql", "oracle", "sqlite", "nosql", "redis", "dynamodb",
		}},
		{Name: "cloud", Skills: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "ci/cd",
		}},
		{Name: "web", Skills: []string{
			"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
		}},
		{Name: "tools", Skills: []string{
			"git", "tableau", "power bi", "excel", "jira", "confluence", "linux", "unix",
		}},
		{Name: "soft_skills", Skills: []string{
			"communication", "leadership", "teamwork", "problem solving",
			"analytical thinking", "project management",
		}},
	})
	if err != nil {
		// the built-in data is static; a failure here is a programming error
		panic(err)
	}
	return t
}

package template

// builtins are the bundled templates, in the order List reports them.
var builtins = []Template{
	{
		ID:          "default",
		Name:        "Default",
		Description: "General-purpose daily entry",
		Body: `# TIL - {date}

## 📚 What I learned today

### 🎯 Goals
-

### 📖 Notes
-

### 💡 Key takeaways
-

### 🔗 References
-

### 🤔 To dig into later
-

### 📝 Memo
-
`,
	},
	{
		ID:          "project",
		Name:        "Project review",
		Description: "Daily log for ongoing project work",
		Body: `# TIL - {date} - {category}

## 🚀 Project
- **Name**:
- **Timeline**:
- **Goal**:

## 📋 Today's work

### ✅ Done
-

### 🔄 In progress
-

### ❌ Problems and issues
-

## 🛠 Tools and techniques
-

## 📚 What I learned
-

## 🎯 Next steps
-

## 💭 Retrospective
-
`,
	},
	{
		ID:          "study",
		Name:        "Study notes",
		Description: "Structured notes for a study session",
		Body: `# TIL - {date} - {category}

## 📚 Topic
- **Subject**:
- **Time spent**:
- **Method**:

## 🎯 Goals
-

## 📖 Notes

### 1. Concepts
-

### 2. Details
-

### 3. Practice / examples
-

## 💡 Key takeaways
-

## 🔗 References
-

## ❓ Open questions
-

## 📝 Follow-up plan
-

## 💭 Reflection
-
`,
	},
	{
		ID:          "bugfix",
		Name:        "Bug fix",
		Description: "Record of a debugging session",
		Body: `# TIL - {date} - {category}

## 🐛 Bug
- **Description**:
- **Environment**:
- **Reproduction**:

## 🔍 Debugging

### 1. Analysis
-

### 2. Root cause
-

### 3. Fix
-

## ✅ Result
-

## 🛠 Tools and techniques
-

## 📚 What I learned
-

## 💡 Prevention
-

## 🔗 References
-
`,
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Shortest useful entry",
		Body: `# TIL - {date}

## 📝 What I learned today
-

## 💡 Key takeaways
-

## 🔗 References
-
`,
	},
}

// IsBuiltin reports whether id names a bundled template.
func IsBuiltin(id string) bool {
	for _, t := range builtins {
		if t.ID == id {
			return true
		}
	}
	return false
}

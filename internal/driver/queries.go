package driver

// Graph layout:
//   (:Student)-[:TAKES]->(:Module)
//   (:Module)-[:INSIDE]->(:PrerequisiteGroup)-[:ARE_PREREQUISITES]->(:Module)
//   (:Module)-[:MUTUALLY_EXCLUSIVE]-(:Module)
//   (:Module)-[:SIMILAR {score}]->(:Module)
//   (:Student)-[:SIMILAR_TO_USER {jaccard_index}]->(:Student)

var IndexQueries = []string{
	"CREATE CONSTRAINT module_course_code IF NOT EXISTS FOR (m:Module) REQUIRE m.course_code IS UNIQUE",
	"CREATE CONSTRAINT student_student_id IF NOT EXISTS FOR (s:Student) REQUIRE s.student_id IS UNIQUE",
	"CREATE INDEX module_faculty IF NOT EXISTS FOR (m:Module) ON (m.faculty)",
	"CREATE FULLTEXT INDEX moduleIndex IF NOT EXISTS FOR (m:Module) ON EACH [m.course_code, m.course_name, m.course_info]",
}

const (
	// hydrates prerequisite groups and mutual exclusions for `m`
	moduleRelations = `
		OPTIONAL MATCH (m)<-[:ARE_PREREQUISITES]-(g:PrerequisiteGroup)
		OPTIONAL MATCH (g)<-[:INSIDE]-(p:Module)
		WITH m, g, collect(p.course_code) AS group_codes
		WITH m, collect(CASE WHEN g IS NULL THEN NULL ELSE group_codes END) AS prerequisites
		OPTIONAL MATCH (m)-[:MUTUALLY_EXCLUSIVE]-(x:Module)
		WITH m, prerequisites, collect(DISTINCT x.course_code) AS mutually_exclusives
	`

	moduleColumns = `
		m.course_code AS course_code,
		m.course_name AS course_name,
		m.course_info AS course_info,
		m.faculty AS faculty,
		m.academic_units AS academic_units,
		m.broadening_and_deepening AS broadening_and_deepening,
		m.grade_type AS grade_type
	`

	ListModulesQuery = `
		MATCH (a:Module)
		WITH count(a) AS total
		MATCH (m:Module)
		WITH m, total
		ORDER BY m.course_code
		SKIP $skip LIMIT $limit
		OPTIONAL MATCH (m)<-[:ARE_PREREQUISITES]-(g:PrerequisiteGroup)
		OPTIONAL MATCH (g)<-[:INSIDE]-(p:Module)
		WITH m, total, g, collect(p.course_code) AS group_codes
		WITH m, total, collect(CASE WHEN g IS NULL THEN NULL ELSE group_codes END) AS prerequisites
		OPTIONAL MATCH (m)-[:MUTUALLY_EXCLUSIVE]-(x:Module)
		WITH m, total, prerequisites, collect(DISTINCT x.course_code) AS mutually_exclusives
		RETURN ` + moduleColumns + `, total, prerequisites, mutually_exclusives
		ORDER BY course_code
	`

	GetModuleQuery = `
		MATCH (m:Module {course_code: $course_code})
	` + moduleRelations + `
		RETURN ` + moduleColumns + `, prerequisites, mutually_exclusives
	`

	GetModulesByCourseCodesQuery = `
		UNWIND $course_codes AS code
		MATCH (m:Module {course_code: code})
		WITH DISTINCT m
	` + moduleRelations + `
		RETURN ` + moduleColumns + `, prerequisites, mutually_exclusives
	`

	SearchModulesQuery = `
		CALL db.index.fulltext.queryNodes('moduleIndex', $search_term) YIELD node
		WITH count(node) AS total
		CALL db.index.fulltext.queryNodes('moduleIndex', $search_term) YIELD node AS m, score
		RETURN ` + moduleColumns + `, score, total
		ORDER BY score DESC
		SKIP $skip LIMIT $limit
	`

	GetCourseCodesQuery = `
		MATCH (m:Module)
		RETURN m.course_code AS course_code
		ORDER BY course_code
	`

	GetFacultiesQuery = `
		MATCH (m:Module)
		WHERE m.faculty IS NOT NULL
		RETURN DISTINCT m.faculty AS faculty
		ORDER BY faculty
	`

	GetModulesForFacultyQuery = `
		MATCH (m:Module {faculty: $faculty})
		RETURN m.course_code AS course_code, m.course_name AS course_name
		ORDER BY course_code
	`

	CountModulesQuery = `
		MATCH (m:Module)
		RETURN count(m) AS total
	`
)

const (
	studentColumns = `
		s.student_id AS student_id,
		s.email AS email,
		s.major AS major,
		s.first_name AS first_name,
		s.last_name AS last_name,
		s.year_of_study AS year_of_study,
		s.disciplines AS disciplines
	`

	GetStudentQuery = `
		MATCH (s:Student {student_id: $student_id})
		OPTIONAL MATCH (s)-[:TAKES]->(m:Module)
		WITH s, collect(m.course_code) AS course_codes
		RETURN ` + studentColumns + `, s.password AS password, course_codes
	`

	GetStudentModulesQuery = `
		MATCH (s:Student {student_id: $student_id})-[:TAKES]->(m:Module)
		RETURN m.course_code AS course_code
		ORDER BY course_code
	`

	UpdateStudentQuery = `
		MATCH (s:Student {student_id: $student_id})
		SET s.email = $email,
			s.major = $major,
			s.first_name = $first_name,
			s.last_name = $last_name,
			s.year_of_study = $year_of_study,
			s.disciplines = $disciplines
		RETURN ` + studentColumns

	AddModulesTakenQuery = `
		MATCH (s:Student {student_id: $student_id})
		UNWIND $course_codes AS code
		MATCH (m:Module {course_code: code})
		MERGE (s)-[:TAKES]->(m)
		RETURN m.course_code AS course_code
	`

	RemoveModulesTakenQuery = `
		MATCH (s:Student {student_id: $student_id})-[t:TAKES]->(m:Module)
		WHERE m.course_code IN $course_codes
		DELETE t
		RETURN m.course_code AS course_code
	`

	RegisterStudentQuery = `
		CREATE (s:Student {
			student_id: $student_id,
			email: $email,
			password: $password,
			major: $major,
			first_name: $first_name,
			last_name: $last_name,
			year_of_study: $year_of_study,
			disciplines: $disciplines
		})
		RETURN s.student_id AS student_id
	`
)

// Recommendation candidates. Parameters: $student_id, $limit,
// $excluded_disciplines and, for content-based, $max_similarity.
const (
	// at least one non-empty prerequisite group made up entirely of modules the student takes
	recFulfilled = `
		EXISTS {
			MATCH (rec)<-[:ARE_PREREQUISITES]-(g:PrerequisiteGroup)
			WHERE EXISTS { (g)<-[:INSIDE]-(:Module) }
				AND ALL(p IN [(g)<-[:INSIDE]-(q:Module) | q] WHERE (s)-[:TAKES]->(p))
		}
	`

	recNoPrerequisites = `
		NOT EXISTS { MATCH (rec)<-[:ARE_PREREQUISITES]-(:PrerequisiteGroup) }
	`

	recColumns = `
		rec.course_code AS course_code,
		rec.course_name AS course_name,
		rec.course_info AS course_info,
		rec.faculty AS faculty,
		rec.academic_units AS academic_units,
		rec.broadening_and_deepening AS broadening_and_deepening,
		rec.grade_type AS grade_type
	`

	contentBasedCandidates = `
		MATCH (s:Student {student_id: $student_id})-[:TAKES]->(m:Module)
		MATCH (m)-[sim:SIMILAR]->(rec:Module)
		WHERE rec.community = m.community
			AND sim.score < $max_similarity
			AND rec.broadening_and_deepening = true
			AND NOT (s)-[:TAKES]->(rec)
			AND NOT (rec)-[:MUTUALLY_EXCLUSIVE]-(m)
			AND NOT coalesce(rec.discipline, '') IN coalesce(s.disciplines, [])
			AND NOT coalesce(rec.discipline, '') IN $excluded_disciplines
		WITH s, rec, max(sim.score) AS score
	`

	collaborativeCandidates = `
		MATCH (s:Student {student_id: $student_id})-[r:SIMILAR_TO_USER]->(n:Student)
		WITH s, n, r.jaccard_index AS jaccard
		ORDER BY jaccard DESC, n.student_id
		LIMIT 10
		MATCH (n)-[:TAKES]->(rec:Module)
		WHERE NOT (s)-[:TAKES]->(rec)
			AND NOT coalesce(rec.discipline, '') IN coalesce(s.disciplines, [])
			AND NOT coalesce(rec.discipline, '') IN $excluded_disciplines
		WITH s, rec, toFloat(count(DISTINCT n)) AS score
	`

	candidateTail = `
		RETURN ` + recColumns + `, score
		ORDER BY score DESC, course_code
		LIMIT $limit
	`

	GetContentBasedFulfilledQuery  = contentBasedCandidates + "WHERE " + recFulfilled + candidateTail
	GetContentBasedNoPrereqQuery   = contentBasedCandidates + "WHERE " + recNoPrerequisites + candidateTail
	GetCollaborativeFulfilledQuery = collaborativeCandidates + "WHERE " + recFulfilled + candidateTail
	GetCollaborativeNoPrereqQuery  = collaborativeCandidates + "WHERE " + recNoPrerequisites + candidateTail
)

const (
	GetModuleSimilaritiesQuery = `
		MATCH (a:Module)-[s:SIMILAR]->(b:Module)
		RETURN a.course_code AS source, b.course_code AS target, s.score AS score
	`

	SetModuleCommunitiesQuery = `
		UNWIND $assignments AS row
		MATCH (m:Module {course_code: row.course_code})
		SET m.community = row.community
		RETURN count(m) AS updated
	`
)

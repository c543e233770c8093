package parser

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var (
	dmlWords = wordSet("SELECT", "INSERT", "UPDATE", "DELETE", "MERGE", "UPSERT", "REPLACE")

	ddlWords = wordSet("CREATE", "ALTER", "DROP", "TRUNCATE", "RENAME", "GRANT", "REVOKE")

	cteWords = wordSet("WITH")

	builtinWords = wordSet(
		"BIGINT", "BIGSERIAL", "BINARY", "BIT", "BLOB", "BOOL", "BOOLEAN", "BYTEA",
		"CHAR", "CHARACTER", "DATE", "DATETIME", "DECIMAL", "DOUBLE", "FLOAT", "INT",
		"INT2", "INT4", "INT8", "INTEGER", "JSON", "JSONB", "LONGTEXT", "MEDIUMINT",
		"MEDIUMTEXT", "MONEY", "NCHAR", "NUMERIC", "NVARCHAR", "REAL", "SERIAL",
		"SMALLINT", "SMALLSERIAL", "TEXT", "TIME", "TIMESTAMP", "TIMESTAMPTZ",
		"TINYINT", "TINYTEXT", "UNSIGNED", "UUID", "VARBINARY", "VARCHAR", "XML",
	)

	keywordWords = wordSet(
		"ACCESS", "ACTION", "ADD", "ADMIN", "AFTER", "AGGREGATE", "ALGORITHM", "ALL",
		"ALWAYS", "ANALYSE", "ANALYZE", "AND", "ANY", "ARRAY", "AS", "ASC",
		"ASYMMETRIC", "AT", "AUTHORIZATION", "AUTO_INCREMENT", "BEFORE", "BEGIN",
		"BETWEEN", "BOTH", "BY", "CACHE", "CALL", "CALLED", "CASCADE", "CASCADED",
		"CASE", "CAST", "CHARSET", "CHECK", "CHECKPOINT", "CLOSE", "CLUSTER",
		"COLLATE", "COLUMN", "COLUMNS", "COMMENT", "COMMIT", "COMMITTED",
		"CONCURRENTLY", "CONFLICT", "CONNECT", "CONSTRAINT", "CONSTRAINTS",
		"CONTINUE", "COPY", "CROSS", "CUBE", "CURRENT", "CURRENT_DATE",
		"CURRENT_ROLE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
		"CURSOR", "CYCLE", "DATABASE", "DATABASES", "DEALLOCATE", "DECLARE",
		"DEFAULT", "DEFERRABLE", "DEFERRED", "DEFINER", "DELAYED", "DELIMITER",
		"DESC", "DESCRIBE", "DETERMINISTIC", "DISABLE", "DISCARD", "DISTINCT",
		"DIV", "DO", "DOMAIN", "DUPLICATE", "EACH", "ELSE", "ELSIF", "ENABLE",
		"ENCODING", "ENCRYPTED", "END", "ENGINE", "ESCAPE", "EXCEPT", "EXCEPTION",
		"EXCLUDE", "EXCLUDING", "EXCLUSIVE", "EXECUTE", "EXISTS", "EXPLAIN",
		"EXTENSION", "EXTERNAL", "FALSE", "FETCH", "FILTER", "FIRST", "FOLLOWING",
		"FOR", "FORCE", "FOREIGN", "FROM", "FULL", "FUNCTION", "FUNCTIONS",
		"GENERATED", "GLOB", "GLOBAL", "GRANTED", "GROUP", "GROUPING", "HANDLER",
		"HAVING", "HIGH_PRIORITY", "HOLD", "IDENTIFIED", "IDENTITY", "IF", "IGNORE",
		"ILIKE", "IMMEDIATE", "IMMUTABLE", "IN", "INCLUDE", "INCLUDING",
		"INCREMENT", "INDEX", "INHERIT", "INHERITS", "INITIALLY", "INNER", "INOUT",
		"INSTEAD", "INTERSECT", "INTERVAL", "INTO", "INVOKER", "IS", "ISNULL",
		"ISOLATION", "JOIN", "KEY", "KEYS", "LANGUAGE", "LAST", "LATERAL",
		"LEADING", "LEFT", "LIKE", "LIMIT", "LISTEN", "LOAD", "LOCAL", "LOCALTIME",
		"LOCALTIMESTAMP", "LOCK", "LOCKED", "LOOP", "LOW_PRIORITY", "MATCH",
		"MATCHED", "MATERIALIZED", "MAXVALUE", "MINVALUE", "MODE", "NATURAL",
		"NEXT", "NO", "NOT", "NOTHING", "NOTIFY", "NOTNULL", "NOWAIT", "NULL",
		"NULLS", "OF", "OFFSET", "OIDS", "ON", "ONLY", "OPTION", "OPTIONS", "OR",
		"ORDER", "OUT", "OUTER", "OVER", "OVERLAPS", "OWNED", "OWNER", "PARTIAL",
		"PARTITION", "PASSWORD", "PLACING", "PRECEDING", "PRECISION", "PREPARE",
		"PRESERVE", "PRIMARY", "PRIOR", "PRIVILEGES", "PROCEDURE", "PUBLIC",
		"RAISE", "RANGE", "READ", "RECURSIVE", "REFERENCES", "REFRESH", "REGEXP",
		"REINDEX", "RELEASE", "REPEATABLE", "RESTART", "RESTRICT", "RETURN",
		"RETURNING", "RETURNS", "RIGHT", "RLIKE", "ROLE", "ROLLBACK", "ROLLUP",
		"ROUTINE", "ROW", "ROWS", "RULE", "SAVEPOINT", "SCHEMA", "SCROLL",
		"SECURITY", "SEQUENCE", "SERIALIZABLE", "SESSION", "SESSION_USER", "SET",
		"SETS", "SHARE", "SHOW", "SIMILAR", "SIMPLE", "SKIP", "SOME", "STABLE",
		"START", "STATEMENT", "STRAIGHT_JOIN", "STRICT", "SYMMETRIC", "SYSTEM",
		"TABLE", "TABLES", "TABLESPACE", "TEMP", "TEMPORARY", "THEN", "TIES", "TO",
		"TOP", "TRAILING", "TRANSACTION", "TRIGGER", "TRUE", "UNBOUNDED",
		"UNCOMMITTED", "UNION", "UNIQUE", "UNKNOWN", "UNLISTEN", "UNLOGGED",
		"UNTIL", "USE", "USER", "USING", "VACUUM", "VALID", "VALIDATE", "VALUES",
		"VARIADIC", "VARYING", "VERBOSE", "VIEW", "VOLATILE", "WHEN", "WHERE",
		"WHILE", "WINDOW", "WITHIN", "WITHOUT", "WORK", "WRITE", "XOR", "ZONE",
	)

	// reservedWords keep their keyword type even when written like a function
	// call or next to a dot.
	reservedWords = wordSet(
		"ALL", "ALTER", "AND", "ANY", "AS", "BETWEEN", "CASE", "CREATE", "DELETE",
		"DROP", "ELSE", "EXISTS", "FROM", "HAVING", "IN", "INSERT", "INTO", "IS",
		"JOIN", "LIKE", "LIMIT", "NOT", "ON", "OR", "OVER", "SELECT", "SOME", "TABLE",
		"THEN", "UNION", "UPDATE", "USING", "VALUES", "WHEN", "WHERE", "WITH",
	)
)

// classifyWord returns the token type of a bare word given whether it is
// written as a call (followed by a parenthesis) or qualified by a dot.
func classifyWord(upper string, callOrQualified bool) TokenType {
	if callOrQualified && !has(reservedWords, upper) {
		return Name
	}

	switch {
	case has(dmlWords, upper):
		return DML
	case has(ddlWords, upper):
		return DDL
	case has(cteWords, upper):
		return CTE
	case has(keywordWords, upper):
		return Keyword
	case has(builtinWords, upper):
		return Builtin
	default:
		return Name
	}
}

func has(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
